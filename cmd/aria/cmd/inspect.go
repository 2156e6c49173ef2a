package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/aria/pkg/dom"
	"github.com/go-drift/aria/pkg/semantics"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		format string
		page   string
		hidden bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <page.html|->",
		Short: "Print the accessibility tree of a decorated page",
		Long: `Decorate a page and print its accessibility tree: roles, names,
descriptions and states of every exposed element.

Formats:
  yaml   structured snapshot (default)
  tree   one line per node`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "tree" {
				return fmt.Errorf("unknown format %q (want yaml or tree)", format)
			}
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			_ = a.decorate(doc, page)

			root := dom.Body(doc)
			if root == nil {
				root = doc
			}
			tree := semantics.Snapshot(root, semantics.SnapshotOptions{IncludeHidden: hidden})
			if format == "tree" {
				return tree.WriteTree(cmd.OutOrStdout())
			}
			data, err := tree.YAML()
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or tree")
	cmd.Flags().StringVar(&page, "page", "", "page URL or path for breadcrumbs (default: page.path)")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "include hidden subtrees")
	return cmd
}
