package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/nav"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var (
		replay bool
		flags  sessionFlags
	)
	cmd := &cobra.Command{
		Use:   "inspect [flow]",
		Short: "Print the scene tree of a flow",
		Long: `Print the scene tree of a flow as a table.

Rows on the active path are marked. With --replay the flow's steps are
dispatched first and the resulting tree is shown.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFlowFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			name := doc.Name
			if name == "" {
				name = args[0]
			}
			fmt.Fprintln(stdout, StyleTitle.Render(name))
			fmt.Fprintln(stdout, renderTree(root))
			printKeyValue("Active", renderPath(nav.ActivePath(root).Keys()))
			printKeyValue("Scenes", strings.Join(slices.Sorted(maps.Keys(doc.Scenes)), ", "))
			printKeyValue("Steps", fmt.Sprint(len(doc.Steps)))
			if len(doc.Steps) > 0 && !replay {
				printNextStep("Replay the steps", "scenetree replay "+args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&replay, "replay", false, "dispatch the flow's steps before printing")
	flags.register(cmd)
	return cmd
}

var tableHeaders = []string{"", "Scene", "Kind", "Title", "Index", "Hints"}

// treeRows lists every node of root depth first, indented by depth.
func treeRows(root *nav.Node) [][]string {
	active := make(map[*nav.Node]bool)
	for _, n := range nav.ActivePath(root) {
		active[n] = true
	}

	var rows [][]string
	nav.Walk(root, func(c nav.Chain) bool {
		n := c.Node()
		marker := ""
		if active[n] {
			marker = "▸"
		}
		index := ""
		if !n.IsLeaf() {
			index = fmt.Sprintf("%d/%d", n.Index, len(n.Children))
		}
		rows = append(rows, []string{
			marker,
			strings.Repeat("  ", len(c)-1) + n.Key,
			kindOf(n),
			n.DisplayTitle(),
			index,
			hints(n),
		})
		return true
	})
	return rows
}

func kindOf(n *nav.Node) string {
	switch {
	case n.Tabs:
		return "tabs"
	case n.IsContent():
		return "content"
	case n.IsLeaf():
		return "scene"
	default:
		return "stack"
	}
}

// hints lists the inheritable hints set on n itself.
func hints(n *nav.Node) string {
	var out []string
	if n.HideNavBar != nil {
		out = append(out, fmt.Sprintf("hideNavBar=%t", *n.HideNavBar))
	}
	if n.HideTabBar != nil {
		out = append(out, fmt.Sprintf("hideTabBar=%t", *n.HideTabBar))
	}
	if n.NavBar != nil {
		out = append(out, "navBar="+*n.NavBar)
	}
	if n.Animation != nil {
		out = append(out, "animation="+*n.Animation)
	}
	if n.Direction != nil {
		out = append(out, "direction="+*n.Direction)
	}
	if n.Duration != nil {
		out = append(out, fmt.Sprintf("duration=%dms", *n.Duration))
	}
	return strings.Join(out, " ")
}

func renderTree(root *nav.Node) string {
	rows := treeRows(root)
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(rows) {
				return base
			}
			if rows[row][0] != "" {
				return base.Foreground(colorCyan)
			}
			if col >= 2 {
				return base.Foreground(colorDim)
			}
			return base
		}).
		Render()
}
