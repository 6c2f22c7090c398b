// Package docs provides utilities for embeding documentation.
package docs

import (
	"embed"

	"github.com/spf13/cobra"

	"github.com/act3-ai/go-common/pkg/embedutil"
)

// GeneralDocumentation is embedded general documentation.
//
//go:embed quick-start-guide.md
//go:embed user-guide.md
//go:embed troubleshooting-faq.md
var GeneralDocumentation embed.FS

// Embedded is a layout of embedded documentation to surface in the help command
// and generate in the gendocs command.
func Embedded(root *cobra.Command) *embedutil.Documentation {
	return &embedutil.Documentation{
		Title:   "Git Credential Helper Client",
		Command: root,
		Categories: []*embedutil.Category{
			embedutil.NewCategory(
				"docs", "General Documentation", root.Name(), 1,
				embedutil.LoadMarkdown(
					"quick-start-guide",
					"Quick Start Guide",
					"quick-start-guide.md",
					GeneralDocumentation),
				embedutil.LoadMarkdown(
					"user-guide",
					"User Guide",
					"user-guide.md",
					GeneralDocumentation),
				embedutil.LoadMarkdown(
					"troubleshooting-faq",
					"Troubleshooting & FAQ",
					"troubleshooting-faq.md",
					GeneralDocumentation),
			),
		},
	}
}
