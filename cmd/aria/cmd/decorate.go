package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/go-drift/aria/pkg/blocks"
	"github.com/go-drift/aria/pkg/focus"
	"github.com/go-drift/aria/pkg/widgets"
)

func newDecorateCmd(a *app) *cobra.Command {
	var (
		output string
		page   string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "decorate <page.html|->",
		Short: "Decorate every widget block in a page",
		Long: `Decorate every recognised block in an HTML page and write the result.

Blocks that cannot be decorated are reported and left as they were.

Examples:
  aria decorate index.html -o dist/index.html
  cat index.html | aria decorate - --page /docs/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if err := a.decorate(doc, page); err != nil && strict {
				return err
			}
			return writeDocument(cmd, doc, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&page, "page", "", "page URL or path for breadcrumbs (default: page.path)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any block cannot be decorated")
	return cmd
}

// decorate runs the block bootstrap over doc with a focus manager shared by
// every widget on the page.
func (a *app) decorate(doc *html.Node, page string) error {
	env := a.env(widgets.Options{Focus: focus.NewManager()}, page)
	decorated, err := blocks.DecorateDocument(doc, env)
	entry := a.log.WithField("widgets", len(decorated))
	if err != nil {
		entry.WithError(err).Warn("some blocks were left undecorated")
		return err
	}
	entry.WithFields(logrus.Fields{"animated": env.Animated, "page": env.Page}).Info("decorated page")
	return nil
}
