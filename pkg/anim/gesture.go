package anim

// Axis is the direction a dismiss gesture travels along.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// DefaultThreshold is the fraction of the travel distance a drag must cover
// for its transition to commit.
const DefaultThreshold = 0.5

// PanHandlers describe the dismiss gesture attached to a card.
type PanHandlers struct {
	Axis      Axis    `json:"axis"`
	Distance  float64 `json:"distance"`
	Threshold float64 `json:"threshold"`
	Enabled   bool    `json:"enabled"`
}

// PanFunc derives pan handlers for a scene; direction is the scene's
// resolved direction hint.
type PanFunc func(props SceneProps, direction string) PanHandlers

// Recognizer supplies pan handlers for horizontal and vertical dismiss
// gestures.
type Recognizer interface {
	ForHorizontal(props SceneProps) PanHandlers
	ForVertical(props SceneProps) PanHandlers
}

// PanFor asks r for the handlers matching direction.
func PanFor(r Recognizer, direction string, props SceneProps) PanHandlers {
	if r == nil {
		r = EdgeRecognizer{}
	}
	if Selector(direction) == Vertical {
		return r.ForVertical(props)
	}
	return r.ForHorizontal(props)
}

// EdgeRecognizer enables a dismiss gesture on every card that has a card
// below it, travelling the full width or height of the layout.
type EdgeRecognizer struct {
	// Threshold overrides DefaultThreshold when positive.
	Threshold float64
}

// ForHorizontal returns handlers for a sideways dismiss gesture.
func (r EdgeRecognizer) ForHorizontal(props SceneProps) PanHandlers {
	return r.handlers(AxisHorizontal, props.Layout.Width, props)
}

// ForVertical returns handlers for a downward dismiss gesture.
func (r EdgeRecognizer) ForVertical(props SceneProps) PanHandlers {
	return r.handlers(AxisVertical, props.Layout.Height, props)
}

func (r EdgeRecognizer) handlers(axis Axis, distance float64, props SceneProps) PanHandlers {
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return PanHandlers{
		Axis:      axis,
		Distance:  distance,
		Threshold: threshold,
		Enabled:   props.Index > 0 && distance > 0,
	}
}

// Gesture tracks one drag of a card back towards the previous index.
// It only produces position values; committing the tree change is up to
// the caller.
type Gesture struct {
	handlers PanHandlers
	index    int
	dragged  float64
}

// Begin starts tracking a drag on the card at index.
func (h PanHandlers) Begin(index int) *Gesture {
	return &Gesture{handlers: h, index: index}
}

// Move adds delta to the dragged distance and returns the new position.
func (g *Gesture) Move(delta float64) float64 {
	if !g.handlers.Enabled {
		return float64(g.index)
	}
	g.dragged += delta
	if g.dragged < 0 {
		g.dragged = 0
	}
	if g.dragged > g.handlers.Distance {
		g.dragged = g.handlers.Distance
	}
	return g.Position()
}

// Progress returns the dragged fraction of the travel distance.
func (g *Gesture) Progress() float64 {
	if !g.handlers.Enabled || g.handlers.Distance <= 0 {
		return 0
	}
	return g.dragged / g.handlers.Distance
}

// Position is the position signal value for the current drag.
func (g *Gesture) Position() float64 {
	return float64(g.index) - g.Progress()
}

// Release ends the drag. It reports whether the transition crossed the
// completion threshold, and the position the signal should settle at:
// index-1 on commit, index when the drag is abandoned.
func (g *Gesture) Release() (commit bool, settle float64) {
	threshold := g.handlers.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if g.handlers.Enabled && g.Progress() >= threshold {
		return true, float64(g.index - 1)
	}
	return false, float64(g.index)
}
