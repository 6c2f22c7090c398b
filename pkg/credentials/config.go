package credentials

import (
	"fmt"
	"net/url"
	"strings"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

const (
	credentialSection = "credential"
	helperKey         = "helper"
)

// CommandFromConfig returns the credential.helper command configured
// for targetURL. `credential "<pattern>"` subsections whose pattern
// matches the URL take precedence, in configuration order, over the
// generic credential section. targetURL may be empty, in which case
// only the generic section is consulted.
//
// Reports [ErrNoHelperConfigured] when no matching helper value exists;
// no default helper is ever substituted.
func CommandFromConfig(cfg *format.Config, targetURL string) (string, error) {
	sec := cfg.Section(credentialSection)

	if targetURL != "" {
		target, err := url.Parse(targetURL)
		if err != nil {
			return "", fmt.Errorf("parsing url %q: %w", targetURL, err)
		}
		for _, sub := range sec.Subsections {
			if !subsectionMatches(sub.Name, target) {
				continue
			}
			if command := sub.Option(helperKey); command != "" {
				return command, nil
			}
		}
	}

	if command := sec.Option(helperKey); command != "" {
		return command, nil
	}
	return "", ErrNoHelperConfigured
}

// FromConfig builds a [Helper] from the credential.helper command
// configured for targetURL, preferring a URL-scoped section over the
// generic one.
func FromConfig(cfg *format.Config, targetURL string, opts ...Option) (*Helper, error) {
	command, err := CommandFromConfig(cfg, targetURL)
	if err != nil {
		return nil, err
	}
	return NewHelper(command, opts...)
}

// subsectionMatches reports whether a credential subsection name, which
// is either a full URL or a scheme-less host/path pattern, applies to
// target.
func subsectionMatches(pattern string, target *url.URL) bool {
	parsed, err := url.Parse(pattern)
	if err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return matchURLs(target, parsed)
	}
	return matchPartialURL(target, pattern)
}

// matchURLs reports whether prefix, a full URL, matches target: same
// scheme, host, and port, same username when prefix carries one, and a
// path that is a prefix of the target's.
func matchURLs(target, prefix *url.URL) bool {
	if target.Scheme != prefix.Scheme ||
		target.Hostname() != prefix.Hostname() ||
		target.Port() != prefix.Port() {
		return false
	}
	if prefix.User != nil {
		if target.User == nil || target.User.Username() != prefix.User.Username() {
			return false
		}
	}
	return strings.HasPrefix(
		strings.TrimRight(target.Path, "/"),
		strings.TrimRight(prefix.Path, "/"),
	)
}

// matchPartialURL reports whether partial, a pattern that may omit the
// scheme, matches target. A path in the pattern must match the
// target's path exactly, modulo trailing slashes.
func matchPartialURL(target *url.URL, partial string) bool {
	var pattern *url.URL
	var err error
	if strings.Contains(partial, "://") {
		pattern, err = url.Parse(partial)
		if err != nil {
			return false
		}
		if target.Scheme != pattern.Scheme {
			return false
		}
	} else {
		pattern, err = url.Parse("scheme://" + partial)
		if err != nil {
			return false
		}
	}

	if pattern.Hostname() != "" && target.Hostname() != pattern.Hostname() {
		return false
	}
	if pattern.User != nil {
		if target.User == nil || target.User.Username() != pattern.User.Username() {
			return false
		}
	}
	if pattern.Port() != "" && target.Port() != pattern.Port() {
		return false
	}
	if path := strings.TrimRight(pattern.Path, "/"); path != "" &&
		path != strings.TrimRight(target.Path, "/") {
		return false
	}
	return true
}
