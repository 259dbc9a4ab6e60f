// Package anim turns a continuous position signal into visual transform
// descriptors for scene transitions.
//
// # Position Signal
//
// Every stack level of a navigation tree owns a position: a float64 that
// tracks the fractional active index of its children. At rest it equals the
// level's index; while moving from index 1 to index 2 it passes through
// values such as 1.4. Hosts sample the signal from a [Position] once per
// frame and hand it to the interpolators through [SceneProps].
//
// # Interpolators
//
// A card's style is chosen by a [Selector]:
//
//   - [Horizontal] (default) and [Vertical] delegate to a [Platform]
//   - [Fade] maps opacity [0, 1, 0.3] and scale [1, 1, 0.95] over
//     [index-1, index, index+1]
//   - [LeftToRight] maps translateX [-width, 0, 0] over the same range
//
// Unknown selectors fall back to [Horizontal]. A scene can bypass the table
// entirely by supplying a [Source]: either a precomputed [Style] or a
// [StyleFunc] evaluated with the renderer props.
//
// Headers cross-fade independently of cards through [OverlayOpacity], which
// uses five control points and pops in faster than card content.
//
// # Gestures
//
// [PanHandlers] describe a dismiss gesture along one [Axis]. [Gesture] tracks
// a drag as a position value and decides on release whether the transition
// commits or animates back to where it started.
package anim
