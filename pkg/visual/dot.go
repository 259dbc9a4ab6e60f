package visual

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds the component, index and props to node labels.
	Detailed bool
}

// ToDOT converts a navigation tree to Graphviz DOT source.
func ToDOT(root *nav.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	active := make(map[*nav.Node]bool)
	for _, n := range nav.ActivePath(root) {
		active[n] = true
	}

	var edges []string
	nav.Walk(root, func(c nav.Chain) bool {
		n := c.Node()
		id := pathID(c)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(fmtAttrs(n, active[n], opts.Detailed), ", "))
		if parent := c.Parent(); parent != nil {
			edge := fmt.Sprintf("  %q -> %q", pathID(parent), id)
			if active[n] {
				edge += " [style=bold, color=\"#1f6feb\"]"
			} else {
				edge += " [color=grey]"
			}
			edges = append(edges, edge+";\n")
		}
		return true
	})

	if len(edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func pathID(c nav.Chain) string {
	return strings.Join(c.Keys(), "/")
}

func fmtLabel(n *nav.Node, detailed bool) string {
	title := n.Key
	if t := n.DisplayTitle(); t != "" && t != n.Key {
		title = fmt.Sprintf("%s (%s)", n.Key, t)
	}
	if !detailed {
		return title
	}

	var parts []string
	if n.Component != "" {
		parts = append(parts, "component: "+n.Component)
	}
	if !n.IsLeaf() {
		parts = append(parts, fmt.Sprintf("index: %d/%d", n.Index, len(n.Children)))
	}
	for _, k := range slices.Sorted(maps.Keys(n.Props)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Props[k]))
	}
	if len(parts) == 0 {
		return title
	}
	return title + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *nav.Node, active, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
	if n.Tabs {
		attrs = append(attrs, "shape=folder")
	}
	switch {
	case active && n.IsLeaf():
		attrs = append(attrs, "fillcolor=\"#1f6feb\"", "fontcolor=white", "penwidth=2")
	case active:
		attrs = append(attrs, "fillcolor=\"#cfe2ff\"")
	default:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG lays out DOT source and returns SVG bytes.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales from
// the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
