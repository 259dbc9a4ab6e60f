package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
)

func (c *CLI) replayCommand() *cobra.Command {
	var (
		flags sessionFlags
		limit int
	)
	cmd := &cobra.Command{
		Use:   "replay [flow]",
		Short: "Dispatch a flow's scripted steps",
		Long: `Dispatch the steps of a flow in order and print the active path after
each one. Replay stops at the first step the router rejects.

With --persist every published snapshot is saved, so the session can be
resumed later with --session.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFlowFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadFlow(args[0])
			if err != nil {
				return err
			}
			actions := doc.Actions()
			if limit > 0 && limit < len(actions) {
				actions = actions[:limit]
			}
			if len(actions) == 0 {
				printInfo("Flow has no steps")
				return nil
			}

			sess, cleanup, err := c.openSession(cmd.Context(), doc, flags, session.Options{})
			if err != nil {
				return err
			}
			defer cleanup()

			root, _ := sess.State()
			printPath(nav.ActivePath(root).Keys())

			prog := newProgress(c.Logger)
			steps, err := sess.Replay(actions)
			for i, st := range steps {
				printStep(i, st.Action.Type, st.Action.Key, st.Changed, st.Path)
			}
			if err != nil {
				printError("step %d failed: %s", len(steps), errors.UserMessage(err))
				return err
			}
			prog.done(fmt.Sprintf("Replayed %d steps", len(steps)))

			if flags.persist || flags.id != "" {
				printSuccess("Saved session %s", sess.ID())
				printNextStep("Resume it", "scenetree browse "+args[0]+" --session "+sess.ID())
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&limit, "steps", "n", 0, "replay only the first n steps")
	return cmd
}
