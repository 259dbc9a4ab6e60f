// Package cli implements the scenetree command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scenetree/internal/config"
	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/buildinfo"
	"github.com/matzehuels/scenetree/pkg/flow"
	"github.com/matzehuels/scenetree/pkg/store"
)

const appName = "scenetree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Scenetree drives hierarchical navigation state",
		Long: `Scenetree loads a navigation flow (a tree of scenes plus a catalog of
scene templates), runs it through the navigation router and renders the
resulting frames: as a table, a graph, an interactive terminal browser or
an HTTP API.`,
		Version:           buildinfo.Resolved(),
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/scenetree/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.stateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and applies the log level. --verbose
// wins over log_level.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := cfg.Level()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	if level <= LogDebug {
		c.installHooks()
	}
	return nil
}

// layout is the simulated screen in cells.
func (c *CLI) layout() anim.Layout {
	return anim.Layout{Width: float64(c.cfg.Screen.Width), Height: float64(c.cfg.Screen.Height)}
}

// loadFlow reads a flow document and applies the configured animation
// defaults to its root.
func (c *CLI) loadFlow(path string) (*flow.Document, error) {
	doc, err := flow.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg.Animation.ApplyTo(doc.Root)
	c.Logger.Debug("loaded flow", "path", path, "scenes", len(doc.Scenes), "steps", len(doc.Steps))
	return doc, nil
}

// openSnapshots opens the configured store. Network backends show a
// spinner while connecting.
func (c *CLI) openSnapshots(ctx context.Context) (*store.Snapshots, func() error, error) {
	sc := c.cfg.StoreConfig()
	var spinner *Spinner
	if sc.Backend == store.BackendRedis || sc.Backend == store.BackendMongo {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Connecting to %s...", sc.Backend))
		spinner.Start()
	}
	s, err := store.Open(ctx, sc)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("opened store", "backend", s.Name())
	return store.NewSnapshots(s, c.cfg.Store.TTL.Duration), s.Close, nil
}

// sessionFlags are shared by commands that run a session.
type sessionFlags struct {
	id      string
	persist bool
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "session", "", "resume the snapshot saved under this session id")
	cmd.Flags().BoolVar(&f.persist, "persist", false, "save every snapshot to the configured store")
}

// openSession starts a session for doc. Persistence is enabled by
// --persist or --session.
func (c *CLI) openSession(ctx context.Context, doc *flow.Document, f sessionFlags, opts session.Options) (*session.Session, func(), error) {
	closeStore := func() error { return nil }
	if f.persist || f.id != "" {
		snaps, closer, err := c.openSnapshots(ctx)
		if err != nil {
			return nil, nil, err
		}
		opts.Snapshots, closeStore = snaps, closer
	}
	opts.ID = f.id
	opts.Layout = c.layout()
	opts.Logger = c.Logger

	sess, err := session.Open(ctx, doc, opts)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	if sess.Restored() {
		c.Logger.Info("resumed session", "id", sess.ID())
	}
	cleanup := func() {
		if err := sess.Close(); err != nil {
			c.Logger.Warn("session closed with errors", "err", err)
		}
		if err := closeStore(); err != nil {
			c.Logger.Warn("close store", "err", err)
		}
	}
	return sess, cleanup, nil
}

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout
