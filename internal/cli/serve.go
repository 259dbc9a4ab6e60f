package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scenetree/internal/server"
	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/render"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		flags sessionFlags
	)
	cmd := &cobra.Command{
		Use:   "serve [flow]",
		Short: "Serve a flow's navigation state over HTTP",
		Long: `Run a navigation session behind an HTTP API.

  GET  /state, /state/active, /state/scenes/{key}, /frame
  POST /actions  {"type": "PUSH", "key": "message", "props": {...}}
  POST /back
  POST /press/{left|right}

The server stops gracefully on SIGINT or SIGTERM.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFlowFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadFlow(args[0])
			if err != nil {
				return err
			}
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			sess, cleanup, err := c.openSession(cmd.Context(), doc, flags, session.Options{
				Clock: render.NewClock(nil),
			})
			if err != nil {
				return err
			}
			defer cleanup()

			printInfo("Session %s", sess.ID())
			return server.New(sess, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	flags.register(cmd)
	return cmd
}
