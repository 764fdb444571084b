package cli

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/markdown"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// inspectCommand creates the inspect command, which lists the linked images
// (usually badges) of an existing markdown file.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "List the badges in a markdown file",
		Example: `  badgegen inspect README.md
  badgegen inspect README.md --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				if stderrors.Is(err, fs.ErrNotExist) {
					return errors.New(errors.ErrCodeFileNotFound, "%s does not exist", args[0])
				}
				return errors.Wrap(errors.ErrCodeInternal, err, "read %s", args[0])
			}

			links := markdown.ExtractLinkedImages(src)
			loggerFromContext(cmd.Context()).Debug("Parsed markdown", "file", args[0], "linked_images", len(links))

			if asJSON {
				if links == nil {
					links = []markdown.ImageLink{}
				}
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(links)
			}

			if len(links) == 0 {
				printWarning(c.errOut, "No linked images in %s", args[0])
				return nil
			}
			printInfo(c.errOut, "%d linked images in %s", len(links), args[0])
			for _, l := range links {
				c.printImageLink(l)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the images as JSON")

	return cmd
}

func (c *CLI) printImageLink(l markdown.ImageLink) {
	title := l.AltText
	if title == "" {
		title = "(no alt text)"
	}
	if strings.HasPrefix(l.ImageTarget, shields.APIBase+"/") {
		title += " " + StyleDim.Render("[shields.io]")
	}
	printSuccess(c.out, "%s", title)
	printKeyValue(c.out, "image", StyleLink.Render(l.ImageTarget))
	printKeyValue(c.out, "link", StyleLink.Render(l.LinkTarget))
}
