package clientdata

import (
	"strings"

	"github.com/ohler55/ojg/oj"
)

// walkText renders a parsed JSON value as display text. Arrays concatenate
// their elements in order with no separator: the engine emits text runs as
// sequences of plain strings and tagged fragment objects. Objects carrying
// the "afs:t" tag follow the fragment convention; anything else is serialized
// back to JSON and treated as a plain run so no data is silently dropped.
func walkText(value any, v TextVisitor) string {
	switch x := value.(type) {
	case []any:
		var b strings.Builder
		for _, elem := range x {
			b.WriteString(walkText(elem, v))
		}
		return b.String()
	case map[string]any:
		if text, ok := renderFragment(x, v); ok {
			return text
		}
		return v.VisitString(oj.JSON(x))
	case string:
		return v.VisitString(x)
	default:
		return v.VisitString(oj.JSON(x))
	}
}

// renderFragment renders one tagged fragment object. ok is false when the
// object carries no tag, an unknown tag, or a payload of the wrong shape; the
// caller then falls back to serializing the whole object.
func renderFragment(obj map[string]any, v TextVisitor) (text string, ok bool) {
	tag, ok := obj[kwicTagKey].(string)
	if !ok {
		return "", false
	}
	switch tag {
	case kwicString:
		if s, ok := obj[kwicTextKey].(string); ok {
			return v.VisitString(s), true
		}
	case kwicMatch:
		if s, ok := obj[kwicMatchKey].(string); ok {
			return v.VisitMatch(s), true
		}
	case kwicTruncate:
		return v.VisitTruncate(), true
	}
	return "", false
}
