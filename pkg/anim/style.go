package anim

// Layout is the size of the surface scenes are painted on.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SceneProps are the renderer props an interpolator receives for one card.
type SceneProps struct {
	// Key of the scene being styled.
	Key string
	// Index of the scene within its level.
	Index int
	// Position is the sampled position signal of the level.
	Position float64
	// Layout of the host surface.
	Layout Layout
}

// Style is the visual transform descriptor of a card.
type Style struct {
	Opacity    float64 `json:"opacity"`
	Scale      float64 `json:"scale"`
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`
}

// Identity returns the resting style: fully opaque, unscaled, untranslated.
func Identity() Style {
	return Style{Opacity: 1, Scale: 1}
}

// Resolve returns s itself, so a precomputed Style can be used as a Source.
func (s Style) Resolve(SceneProps) Style { return s }

// Source produces a card style for the given renderer props.
type Source interface {
	Resolve(props SceneProps) Style
}

// StyleFunc adapts a function to a Source.
type StyleFunc func(props SceneProps) Style

// Resolve calls f(props).
func (f StyleFunc) Resolve(props SceneProps) Style { return f(props) }

// CardState carries values computed for the card being styled. The hide
// flags are only resolved for the active card.
type CardState struct {
	IsActive   bool  `json:"isActive"`
	HideNavBar *bool `json:"hideNavBar,omitempty"`
	HideTabBar *bool `json:"hideTabBar,omitempty"`
}

// SceneStyleFunc returns extra, host-interpreted style for a card.
type SceneStyleFunc func(props SceneProps, state CardState) map[string]any

var (
	_ Source = Style{}
	_ Source = StyleFunc(nil)
)
