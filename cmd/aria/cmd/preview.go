package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/aria/internal/tui"
	"github.com/go-drift/aria/pkg/blocks"
	"github.com/go-drift/aria/pkg/dom"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		index  int
		page   string
		list   bool
		hidden bool
	)
	cmd := &cobra.Command{
		Use:   "preview <page.html|->",
		Short: "Interactively preview one widget block",
		Long: `Decorate one block of a page and drive it from the keyboard.

Arrow keys, Home, End, Space and Enter are sent to the widget; Tab moves
between tab stops. Frames advance every preview.tick and transitions end
after preview.duration.

Examples:
  aria preview index.html --list
  aria preview index.html --block 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			found := dom.FindAll(doc, blocks.IsBlock)
			if list {
				for i, b := range found {
					name, _, _ := blocks.Lookup(b)
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i, name, dom.GetAttr(b, "class"))
				}
				return nil
			}
			if index < 0 || index >= len(found) {
				return fmt.Errorf("block %d out of range: page has %d blocks", index, len(found))
			}

			session := tui.NewSession(a.idGenerator())
			w, err := blocks.Decorate(found[index], a.env(session.Options(), page))
			if err != nil {
				return err
			}
			model := tui.New(session, w, tui.Options{
				Tick:       a.cfg.Preview.Tick,
				Duration:   a.cfg.Preview.Duration,
				ShowHidden: hidden,
			})
			_, err = tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}
	cmd.Flags().IntVarP(&index, "block", "b", 0, "index of the block to preview")
	cmd.Flags().StringVar(&page, "page", "", "page URL or path for breadcrumbs (default: page.path)")
	cmd.Flags().BoolVar(&list, "list", false, "list the page's blocks and exit")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "show hidden subtrees")
	return cmd
}
