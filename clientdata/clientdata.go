// Package clientdata extracts display text from the auxiliary payloads
// attached to search reply results. Each payload is an XML document or a JSON
// value in which the engine may have embedded highlight markers around the
// terms that matched the query; extraction resolves a locator inside the
// payload and renders the selected portion as text, routing every marker
// through a pluggable highlight strategy.
package clientdata

// Extractor renders display text from one client data payload. Contents are
// parsed eagerly at construction and never mutated afterwards, so a single
// extractor can serve concurrent readers.
type Extractor interface {
	// ID returns the payload identifier carried by the reply.
	ID() string

	// MimeType returns the declared contents format.
	MimeType() string

	// Text renders the whole contents. XML payloads return the original
	// document string untouched; JSON payloads return their canonical
	// serialization. Highlight strategies do not apply here.
	Text(opts *RenderOptions) (string, error)

	// TextAt renders the portion selected by locator: an XPath expression
	// for XML payloads, a field name or $-prefixed JSONPath for JSON ones.
	TextAt(locator string, opts *RenderOptions) (string, error)
}

// RenderOptions carries the optional rendering strategies. The manager passes
// them through opaquely; each extractor picks the field it understands. A nil
// options value, or a nil field, selects the built-in bold defaults.
type RenderOptions struct {
	// Formatter decorates matched terms in XML payloads.
	Formatter HighlightFormatter
	// Visitor formats the annotated fragments of JSON text runs.
	Visitor TextVisitor
}

func (o *RenderOptions) formatter() HighlightFormatter {
	if o == nil || o.Formatter == nil {
		return DefaultFormatter()
	}
	return o.Formatter
}

func (o *RenderOptions) visitor() TextVisitor {
	if o == nil || o.Visitor == nil {
		return DefaultVisitor()
	}
	return o.Visitor
}

// Option adjusts extractor construction. Options given to NewManager are
// forwarded to every extractor it builds.
type Option func(*settings)

type settings struct {
	log Logger
}

// WithLogger routes non-fatal extraction diagnostics to l instead of the
// process-wide default logger.
func WithLogger(l Logger) Option {
	return func(s *settings) { s.log = l }
}

func newSettings(opts []Option) settings {
	s := settings{log: DefaultLogger()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
