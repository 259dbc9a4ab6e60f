// Package visual draws navigation trees as Graphviz node-link diagrams.
//
// [ToDOT] emits DOT source with one box per scene. The active path, from
// the root to the active leaf, is filled and its edges are bold; tab
// containers use a folder shape. [RenderSVG] lays the DOT out in-process
// with [github.com/goccy/go-graphviz]:
//
//	dot := visual.ToDOT(root, visual.Options{Detailed: true})
//	svg, err := visual.RenderSVG(dot)
//
// Node identifiers are slash-separated key paths, so a key reused in two
// branches yields two nodes.
package visual
