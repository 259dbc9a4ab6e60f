package router

import (
	"maps"

	"github.com/matzehuels/scenetree/pkg/nav"
)

// Canonical action types understood by the default reducer.
const (
	Push       = "PUSH"
	Back       = "BACK"
	BackAction = "BACK_ACTION"
	Jump       = "JUMP"
	Replace    = "REPLACE"
	Reset      = "RESET"
	PopTo      = "POP_TO"
	Refresh    = "REFRESH"
	Focus      = "FOCUS"
)

// Action is a navigation request.
type Action struct {
	// Type names the request, before or after normalization.
	Type string `json:"type"`
	// Key is the target scene key, when the action has one.
	Key string `json:"key,omitempty"`
	// Props are merged into the target scene.
	Props map[string]any `json:"props,omitempty"`
	// Scene is the focused scene carried by FOCUS actions.
	Scene *nav.Node `json:"-"`
}

// Vocabulary maps external action type names to canonical constants.
type Vocabulary map[string]string

// DefaultVocabulary maps the conventional lower-case names, and every
// canonical constant to itself.
var DefaultVocabulary = Vocabulary{
	"push":       Push,
	"back":       Back,
	"BackAction": BackAction,
	"pop":        BackAction,
	"jump":       Jump,
	"replace":    Replace,
	"reset":      Reset,
	"popTo":      PopTo,
	"refresh":    Refresh,
	"focus":      Focus,

	Push:       Push,
	Back:       Back,
	BackAction: BackAction,
	Jump:       Jump,
	Replace:    Replace,
	Reset:      Reset,
	PopTo:      PopTo,
	Refresh:    Refresh,
	Focus:      Focus,
}

// Normalize returns a with its type rewritten to the canonical constant.
// Unrecognized types are returned unchanged.
func (v Vocabulary) Normalize(a Action) Action {
	if canonical, ok := v[a.Type]; ok {
		a.Type = canonical
	}
	return a
}

// With returns a copy of v extended by extra. Entries in extra win.
func (v Vocabulary) With(extra Vocabulary) Vocabulary {
	out := maps.Clone(v)
	if out == nil {
		out = make(Vocabulary, len(extra))
	}
	maps.Copy(out, extra)
	return out
}
