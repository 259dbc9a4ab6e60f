package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/render"
)

func (c *CLI) browseCommand() *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "browse [flow]",
		Short: "Walk through a flow in an interactive terminal view",
		Long: `Open a flow in a terminal view that renders the navigation bar, the
cards of the active stacks and the tab bar, animating every transition.

Keys:
  esc/backspace  host back button (exits at the root)
  h/l            left and right header buttons
  tab            next tab
  n/enter        dispatch the next scripted step
  [ and ]        drag the active card back, release the drag
  q              quit`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFlowFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadFlow(args[0])
			if err != nil {
				return err
			}
			m := newBrowseModel(doc.Name, doc.Actions())
			clock := render.NewClock(nil)
			sess, cleanup, err := c.openSession(cmd.Context(), doc, flags, session.Options{
				Clock:     clock,
				OnExitApp: m.exit,
			})
			if err != nil {
				return err
			}
			defer cleanup()
			m.sess = sess
			m.width, m.height = c.cfg.Screen.Width, c.cfg.Screen.Height

			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}
	flags.register(cmd)
	return cmd
}
