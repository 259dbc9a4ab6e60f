package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/store"
)

// stateCommand manages persisted snapshots.
func (c *CLI) stateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Manage saved navigation snapshots",
	}
	cmd.AddCommand(c.stateListCommand())
	cmd.AddCommand(c.stateShowCommand())
	cmd.AddCommand(c.stateClearCommand())
	cmd.AddCommand(c.statePathCommand())
	return cmd
}

func (c *CLI) stateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, closeStore, err := c.openSnapshots(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			ids, err := snaps.Sessions(cmd.Context())
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				printInfo("No saved sessions")
				return nil
			}
			for _, id := range ids {
				rec, ok, err := snaps.Load(cmd.Context(), id)
				if err != nil || !ok {
					printDetail("%s (unreadable)", id)
					continue
				}
				fmt.Fprintf(stdout, "%s  %s  %s\n", StyleValue.Render(id),
					StyleDim.Render(rec.SavedAt.Local().Format("2006-01-02 15:04")),
					renderPath(nav.ActivePath(rec.Root).Keys()))
			}
			return nil
		},
	}
}

func (c *CLI) stateShowCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show [session]",
		Short: "Print a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, closeStore, err := c.openSnapshots(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			rec, ok, err := snaps.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no snapshot saved for session %s", args[0])
			}
			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}
			printKeyValue("Session", rec.Session)
			printKeyValue("Revision", fmt.Sprint(rec.Revision))
			printKeyValue("Saved", rec.SavedAt.Local().Format("2006-01-02 15:04:05"))
			printKeyValue("Active", renderPath(nav.ActivePath(rec.Root).Keys()))
			fmt.Fprintln(stdout, renderTree(rec.Root))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw record")
	return cmd
}

func (c *CLI) stateClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [session...]",
		Short: "Delete saved snapshots (all of them without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, closeStore, err := c.openSnapshots(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			ids := args
			if len(ids) == 0 {
				if ids, err = snaps.Sessions(cmd.Context()); err != nil {
					return err
				}
			}
			for _, id := range ids {
				if err := snaps.Delete(cmd.Context(), id); err != nil {
					return err
				}
			}
			printSuccess("Cleared %d saved sessions", len(ids))
			printDetail("Backend: %s", snaps.Backend())
			return nil
		},
	}
}

func (c *CLI) statePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the snapshot directory of the file store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Store.Backend != store.BackendFile {
				return errors.New(errors.ErrCodeUnsupported, "the %s store has no directory", c.cfg.Store.Backend)
			}
			fmt.Fprintln(stdout, c.cfg.Store.Dir)
			return nil
		},
	}
}
