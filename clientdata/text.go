package clientdata

// Wire constants of the highlight convention. The engine wraps matched terms
// in a match element (XML) or an "afs:t"-tagged fragment object (JSON); both
// belong to the namespace below.
const (
	// HighlightNS is the namespace URI of the highlight markup.
	HighlightNS = "http://ref.antidot.net/v7/afs#"
	// HighlightPrefix is the prefix the engine binds to HighlightNS.
	HighlightPrefix = "afs"
	// HighlightTag is the local name of the XML highlight element.
	HighlightTag = "match"
)

// Fragment tags of JSON text runs.
const (
	kwicTagKey   = "afs:t"
	kwicString   = "KwicString"
	kwicMatch    = "KwicMatch"
	kwicTruncate = "KwicTruncate"

	kwicTextKey  = "text"
	kwicMatchKey = "match"
)

// HighlightFormatter decorates one matched term while rendering XML client
// data. FormatMatch receives the flattened text content of a highlight
// element and returns its rendering.
type HighlightFormatter interface {
	FormatMatch(text string) string
}

// HighlightFormatterFunc adapts a plain function to HighlightFormatter.
type HighlightFormatterFunc func(text string) string

// FormatMatch calls f(text).
func (f HighlightFormatterFunc) FormatMatch(text string) string { return f(text) }

// TextVisitor formats the annotated fragments of a JSON text run: plain
// runs, matched terms and truncation markers.
type TextVisitor interface {
	// VisitString renders a plain text run.
	VisitString(text string) string
	// VisitMatch renders a term the engine matched.
	VisitMatch(text string) string
	// VisitTruncate renders a truncation marker.
	VisitTruncate() string
}

// TagVisitor renders matched terms between fixed tags and passes plain runs
// through unchanged. It also implements HighlightFormatter, so one value can
// drive both XML and JSON payloads.
type TagVisitor struct {
	MatchPrefix string
	MatchSuffix string
	Truncate    string
}

// VisitString returns text unchanged.
func (v TagVisitor) VisitString(text string) string { return text }

// VisitMatch wraps text in the configured tags.
func (v TagVisitor) VisitMatch(text string) string {
	return v.MatchPrefix + text + v.MatchSuffix
}

// VisitTruncate returns the configured truncation marker.
func (v TagVisitor) VisitTruncate() string { return v.Truncate }

// FormatMatch implements HighlightFormatter with the same tags.
func (v TagVisitor) FormatMatch(text string) string { return v.VisitMatch(text) }

// DefaultVisitor returns the strategy applied when callers pass none: matched
// terms wrapped in <b> tags, truncations rendered as "...".
func DefaultVisitor() TagVisitor {
	return TagVisitor{MatchPrefix: "<b>", MatchSuffix: "</b>", Truncate: "..."}
}

// DefaultFormatter returns the XML-side counterpart of DefaultVisitor.
func DefaultFormatter() HighlightFormatter {
	return DefaultVisitor()
}
