package flow

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/reducer"
	"github.com/matzehuels/scenetree/pkg/router"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf returns the format implied by a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported flow file %q (want .toml or .json)", path)
}

// Document is a navigation flow.
type Document struct {
	Name       string               `json:"name,omitempty" toml:"name,omitempty"`
	Vocabulary map[string]string    `json:"vocabulary,omitempty" toml:"vocabulary,omitempty"`
	Root       *nav.Node            `json:"root" toml:"root"`
	Scenes     map[string]*nav.Node `json:"scenes,omitempty" toml:"scenes,omitempty"`
	Steps      []Step               `json:"steps,omitempty" toml:"steps,omitempty"`
}

// Step is one scripted action.
type Step struct {
	Type  string         `json:"type" toml:"type"`
	Key   string         `json:"key,omitempty" toml:"key,omitempty"`
	Props map[string]any `json:"props,omitempty" toml:"props,omitempty"`
}

// Action converts s to a router action.
func (s Step) Action() router.Action {
	return router.Action{Type: s.Type, Key: s.Key, Props: s.Props}
}

// Catalog returns the scene templates as a reducer catalog.
func (d *Document) Catalog() reducer.Catalog {
	c := make(reducer.Catalog, len(d.Scenes))
	for k, n := range d.Scenes {
		c[k] = n
	}
	return c
}

// Actions returns the scripted steps as router actions.
func (d *Document) Actions() []router.Action {
	out := make([]router.Action, len(d.Steps))
	for i, s := range d.Steps {
		out[i] = s.Action()
	}
	return out
}

// VocabularyOrDefault returns the document's vocabulary layered over
// router.DefaultVocabulary.
func (d *Document) VocabularyOrDefault() router.Vocabulary {
	return router.DefaultVocabulary.With(router.Vocabulary(d.Vocabulary))
}

// Read decodes a document from r.
func Read(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	if err := doc.normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) normalize() error {
	if err := nav.Validate(d.Root); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "root")
	}
	for key, n := range d.Scenes {
		if err := errors.ValidateSceneKey(key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "scene %q", key)
		}
		if n == nil {
			return errors.New(errors.ErrCodeInvalidFormat, "scene %q is empty", key)
		}
		if n.Key == "" {
			n.Key = key
		}
		if err := nav.Validate(n); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "scene %q", key)
		}
	}
	return nil
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	defer f.Close()
	doc, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return doc, nil
}

// Write encodes doc to w.
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return nil
}

// Save writes doc to path in the format implied by its extension.
func Save(path string, doc *Document) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return Write(f, doc, format)
}
