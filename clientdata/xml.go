package clientdata

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/agentic-research/afstext/api"
	"github.com/agentic-research/afstext/internal/xmltext"
)

// highlightDecl is the namespace declaration injected by repairHighlight.
const highlightDecl = ` xmlns:` + HighlightPrefix + `="` + HighlightNS + `"`

// XMLExtractor renders text from an XML client data payload. The document is
// parsed once at construction; Text and TextAt never mutate it.
type XMLExtractor struct {
	id           string
	mime         string
	raw          string // original contents, returned verbatim by Text
	doc          *xmlquery.Node
	hasHighlight bool
	log          Logger
}

// NewXMLExtractor decodes record contents as an XML document string and
// parses it. Payloads the engine highlighted carry match elements whose afs
// namespace is never declared; those documents are textually repaired before
// parsing (see repairHighlight). Contents that still do not parse yield a
// MalformedXMLError.
func NewXMLExtractor(record api.ClientData, opts ...Option) (*XMLExtractor, error) {
	s := newSettings(opts)
	raw, err := decodeXMLContents(record.Contents)
	if err != nil {
		return nil, err
	}
	contents, hasHighlight := repairHighlight(raw)
	doc, err := xmlquery.Parse(strings.NewReader(contents))
	if err != nil {
		return nil, &MalformedXMLError{Err: err}
	}
	return &XMLExtractor{
		id:           record.ID,
		mime:         record.MimeType,
		raw:          raw,
		doc:          doc,
		hasHighlight: hasHighlight,
		log:          s.log,
	}, nil
}

// decodeXMLContents unwraps the XML document from the contents field. In a
// reply the document travels as a JSON string; records built by hand may
// carry the bare markup instead, so anything not starting with a quote is
// taken verbatim.
func decodeXMLContents(contents json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(contents)
	if len(trimmed) == 0 {
		return "", &MissingFieldError{Field: "contents"}
	}
	if trimmed[0] != '"' {
		return string(contents), nil
	}
	var raw string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return "", &MalformedXMLError{Err: err}
	}
	if raw == "" {
		return "", &MissingFieldError{Field: "contents"}
	}
	return raw, nil
}

// repairHighlight makes highlighted payloads parseable. When highlighting is
// active the engine emits <match> or <afs:match> markers without ever
// declaring the afs namespace, so the document is patched before parsing: the
// first '>' is assumed to close the root element's start tag and is rewritten
// to carry the declaration. Documents that already declare the prefix, or
// carry no marker, pass through untouched. A prolog or comment ahead of the
// root element defeats the heuristic and the patched document fails to parse.
func repairHighlight(raw string) (contents string, hasHighlight bool) {
	if strings.Contains(raw, "xmlns:"+HighlightPrefix) {
		return raw, false
	}
	if !strings.Contains(raw, "<"+HighlightTag+">") &&
		!strings.Contains(raw, "<"+HighlightPrefix+":"+HighlightTag+">") {
		return raw, false
	}
	return strings.Replace(raw, ">", highlightDecl+">", 1), true
}

// ID returns the payload identifier.
func (e *XMLExtractor) ID() string { return e.id }

// MimeType returns the declared contents format.
func (e *XMLExtractor) MimeType() string { return e.mime }

// HasHighlight reports whether construction detected highlight markup and
// repaired the document.
func (e *XMLExtractor) HasHighlight() bool { return e.hasHighlight }

// Text returns the original contents string byte for byte. The parsed tree is
// never re-serialized: round-tripping could shift whitespace and attribute
// order that callers expect verbatim.
func (e *XMLExtractor) Text(_ *RenderOptions) (string, error) {
	return e.raw, nil
}

// TextAt evaluates path as an XPath expression and flattens the first
// matching node. Zero matches render as "", indistinguishable from a matching
// node with empty text content. In a highlighted document every match element
// is routed through the formatter instead of being flattened.
func (e *XMLExtractor) TextAt(path string, opts *RenderOptions) (string, error) {
	nodes, err := xmlquery.QueryAll(e.doc, path)
	if err != nil {
		return "", &InvalidPathError{Path: path, Err: err}
	}
	if len(nodes) == 0 {
		e.log.Debug("xpath matched nothing", "id", e.id, "path", path)
		return "", nil
	}
	if !e.hasHighlight {
		return xmltext.Flatten(nodes[0]), nil
	}
	return xmltext.FlattenFiltered(nodes[0], matchFilter(opts.formatter())), nil
}

// matchFilter renders highlight elements through f. Repaired documents bind
// the afs prefix to HighlightNS; unprefixed markers stay in no namespace, so
// both bindings count.
func matchFilter(f HighlightFormatter) xmltext.Filter {
	return xmltext.Filter{
		Match: func(n *xmlquery.Node) bool {
			return n.Data == HighlightTag &&
				(n.NamespaceURI == HighlightNS || n.NamespaceURI == "")
		},
		Render: func(n *xmlquery.Node) string {
			return f.FormatMatch(xmltext.Flatten(n))
		},
	}
}
