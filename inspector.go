package inspect

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by JSONInspector when a message is not valid
// JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Inspector reads the variant tag of a raw message before any payload is
// decoded.
type Inspector interface {
	Inspect(raw []byte) (View, error)
}

// View is a read-only, format-agnostic window on one message. Paths use the
// syntax of the inspector that produced the view.
type View interface {
	// HasField reports whether path exists.
	HasField(path string) bool

	// GetString returns the string at path. It is false when path is
	// missing or holds another kind of value.
	GetString(path string) (string, bool)

	// GetNumber returns the number at path. It is false when path is
	// missing or holds another kind of value.
	GetNumber(path string) (float64, bool)

	// GetBytes returns the encoded value at path. An empty path returns the
	// whole message.
	GetBytes(path string) ([]byte, bool)
}

// JSONInspector returns an Inspector for JSON messages. Paths use gjson
// syntax ("kind", "detail.kind", "items.0.id").
func JSONInspector() Inspector {
	return jsonInspector{}
}

type jsonInspector struct{}

func (jsonInspector) Inspect(raw []byte) (View, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonView{raw: raw, root: gjson.ParseBytes(raw)}, nil
}

// jsonView keeps the parsed root so that each lookup scans from it.
type jsonView struct {
	raw  []byte
	root gjson.Result
}

func (v jsonView) lookup(path string, kind gjson.Type) (gjson.Result, bool) {
	r := v.root.Get(path)
	return r, r.Exists() && r.Type == kind
}

func (v jsonView) HasField(path string) bool {
	return v.root.Get(path).Exists()
}

func (v jsonView) GetString(path string) (string, bool) {
	r, ok := v.lookup(path, gjson.String)
	if !ok {
		return "", false
	}
	return r.Str, true
}

func (v jsonView) GetNumber(path string) (float64, bool) {
	r, ok := v.lookup(path, gjson.Number)
	if !ok {
		return 0, false
	}
	return r.Num, true
}

func (v jsonView) GetBytes(path string) ([]byte, bool) {
	if path == "" {
		return v.raw, true
	}
	r := v.root.Get(path)
	if !r.Exists() {
		return nil, false
	}
	return []byte(r.Raw), true
}
