package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/visual"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
		replay   bool
		flags    sessionFlags
	)
	cmd := &cobra.Command{
		Use:   "dot [flow]",
		Short: "Draw the scene tree as a Graphviz graph",
		Long: `Draw the scene tree of a flow as a node-link graph with the active path
highlighted. The default output is DOT source; --format svg lays the graph
out in-process.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFlowFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return errors.New(errors.ErrCodeInvalidInput, "unsupported format %q (want dot or svg)", format)
			}
			doc, err := c.loadFlow(args[0])
			if err != nil {
				return err
			}
			root := doc.Root
			if replay || flags.id != "" {
				sess, cleanup, err := c.openSession(cmd.Context(), doc, flags, session.Options{})
				if err != nil {
					return err
				}
				defer cleanup()
				if replay {
					if _, err := sess.Replay(doc.Actions()); err != nil {
						return err
					}
				}
				root, _ = sess.State()
			}

			data := []byte(visual.ToDOT(root, visual.Options{Detailed: detailed}))
			if format == "svg" {
				if data, err = visual.RenderSVG(string(data)); err != nil {
					return err
				}
			}

			if output == "" {
				_, err := stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}
			printSuccess("Wrote %s graph", format)
			printFile(output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include components, indices and props in labels")
	cmd.Flags().BoolVar(&replay, "replay", false, "dispatch the flow's steps before drawing")
	flags.register(cmd)
	return cmd
}
