package clientdata

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/afstext/api"
)

// JSONExtractor renders text from a JSON client data payload. Contents are
// parsed once at construction; every later call is a read-only query over the
// parsed value.
type JSONExtractor struct {
	id    string
	mime  string
	raw   json.RawMessage
	value any
	log   Logger
}

// NewJSONExtractor parses record contents as JSON. Contents that do not parse
// yield a MalformedJSONError.
func NewJSONExtractor(record api.ClientData, opts ...Option) (*JSONExtractor, error) {
	s := newSettings(opts)
	if len(bytes.TrimSpace(record.Contents)) == 0 {
		return nil, &MissingFieldError{Field: "contents"}
	}
	value, err := oj.Parse(record.Contents)
	if err != nil {
		return nil, &MalformedJSONError{Err: err}
	}
	return &JSONExtractor{
		id:    record.ID,
		mime:  record.MimeType,
		raw:   record.Contents,
		value: value,
		log:   s.log,
	}, nil
}

// ID returns the payload identifier.
func (e *JSONExtractor) ID() string { return e.id }

// MimeType returns the declared contents format.
func (e *JSONExtractor) MimeType() string { return e.mime }

// Text returns the canonical serialization of the whole contents: whitespace
// between tokens is dropped while key order and string escaping stay exactly
// as received. Visitors do not apply to the whole-payload rendering.
func (e *JSONExtractor) Text(_ *RenderOptions) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, e.raw); err != nil {
		// Construction already validated the bytes.
		return oj.JSON(e.value), nil
	}
	return buf.String(), nil
}

// TextAt renders the contents portion selected by name. Three cases:
//
//   - name starts with "$": it is evaluated as a JSONPath expression and the
//     text of every result is concatenated in order.
//   - the contents are an array: the locator selects the text run as a whole,
//     whatever its value, and the array is walked element by element. By
//     convention callers pass "" here.
//   - otherwise name is a field of the top-level object. A missing field is
//     not an error: it is logged and rendered as "", because contents are
//     frequently third-party data the caller does not control.
func (e *JSONExtractor) TextAt(name string, opts *RenderOptions) (string, error) {
	v := opts.visitor()
	if strings.HasPrefix(name, "$") {
		return e.textAtPath(name, v)
	}
	switch contents := e.value.(type) {
	case []any:
		return walkText(contents, v), nil
	case map[string]any:
		field, ok := contents[name]
		if !ok {
			e.log.Warn("client data field not found", "id", e.id, "field", name)
			return "", nil
		}
		return walkText(field, v), nil
	default:
		e.log.Warn("client data field not found", "id", e.id, "field", name)
		return "", nil
	}
}

// textAtPath evaluates a JSONPath locator against the contents and
// concatenates the text of every result in document order. Zero results
// render as "", matching the XPath behavior of the XML extractor.
func (e *JSONExtractor) textAtPath(path string, v TextVisitor) (string, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return "", &InvalidPathError{Path: path, Err: err}
	}
	var b strings.Builder
	for _, result := range expr.Get(e.value) {
		b.WriteString(walkText(result, v))
	}
	return b.String(), nil
}
