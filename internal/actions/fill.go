// Package actions holds actions called by the root gitcreds command.
package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/act3-ai/gitcreds/pkg/apis"
	"github.com/act3-ai/gitcreds/pkg/apis/gitcreds.act3-ai.io/v1alpha1"
	"github.com/act3-ai/gitcreds/pkg/credentials"
	"github.com/act3-ai/go-common/pkg/config"
)

// Fill represents the base action: one credential helper get for a
// target URL.
type Fill struct {
	version   string
	apiScheme *runtime.Scheme
	// ConfigFiles contains a list of potential configuration file locations.
	ConfigFiles []string

	out io.Writer

	// target remote
	url string

	// overridable for testing
	gitCfg *format.Config
	sys    credentials.System
}

// NewFill creates a new Fill action with default values.
func NewFill(out io.Writer, url, version string, cfgFiles []string) *Fill {
	return &Fill{
		version:     version,
		apiScheme:   apis.NewScheme(),
		ConfigFiles: cfgFiles,
		out:         out,
		url:         url,
	}
}

// Run performs the get request against the configured helper and
// writes the credential mapping to the output as key=value lines.
func (action *Fill) Run(ctx context.Context) error {
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}

	gitCfg, err := action.gitConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading git configuration: %w", err)
	}

	opts := []credentials.Option{}
	if action.sys != nil {
		opts = append(opts, credentials.WithSystem(action.sys))
	} else if cfg.Shell != "" {
		opts = append(opts, credentials.WithSystem(credentials.NewSystem(cfg.Shell)))
	}
	if cfg.Git != "" {
		opts = append(opts, credentials.WithGit(cfg.Git))
	}

	helper, err := credentials.FromConfig(gitCfg, action.url, opts...)
	if err != nil {
		return fmt.Errorf("building credential helper: %w", err)
	}

	slog.DebugContext(ctx, "requesting credentials from helper", slog.String("url", action.url))
	creds, err := helper.Get(ctx, action.url)
	if err != nil {
		return err
	}

	return writeCredentials(action.out, creds)
}

// gitConfig loads the merged git configuration, scoped to the
// enclosing repository when one is present.
func (action *Fill) gitConfig(ctx context.Context) (*format.Config, error) {
	if action.gitCfg != nil {
		return action.gitCfg, nil
	}

	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		cfg, err := repo.ConfigScoped(gitconfig.GlobalScope)
		if err != nil {
			return nil, fmt.Errorf("loading repository-scoped configuration: %w", err)
		}
		return cfg.Raw, nil
	}

	slog.DebugContext(ctx, "not inside a git repository, using global configuration")
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("loading global configuration: %w", err)
	}
	return cfg.Raw, nil
}

// GetScheme returns the runtime scheme used for configuration file loading.
func (action *Fill) GetScheme() *runtime.Scheme {
	return action.apiScheme
}

// GetConfig loads the gitcreds Configuration.
func (action *Fill) GetConfig(ctx context.Context) (c *v1alpha1.Configuration, err error) {
	c = &v1alpha1.Configuration{}

	slog.DebugContext(ctx, "searching for configuration files", slog.Any("cfgFiles", action.ConfigFiles))

	err = config.Load(slog.Default(), action.GetScheme(), c, action.ConfigFiles)
	if err != nil {
		return c, fmt.Errorf("loading configuration: %w", err)
	}

	defer slog.DebugContext(ctx, "using config", slog.Any("configuration", c))

	return c, nil
}

// writeCredentials writes the mapping as key=value lines, username and
// password first, the remaining keys in sorted order.
func writeCredentials(out io.Writer, creds credentials.Credentials) error {
	keys := make([]string, 0, len(creds))
	for key := range creds {
		if key == "username" || key == "password" {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	keys = append([]string{"username", "password"}, keys...)

	for _, key := range keys {
		if _, err := fmt.Fprintf(out, "%s=%s\n", key, creds[key]); err != nil {
			return fmt.Errorf("writing credentials: %w", err)
		}
	}
	return nil
}
