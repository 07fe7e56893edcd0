package api

import "encoding/json"

// ClientData is one auxiliary payload attached to a search result. The engine
// forwards it verbatim: Contents holds either a raw XML document (as a JSON
// string) or an arbitrary JSON value, discriminated by MimeType.
type ClientData struct {
	// ID identifies the payload within its result ("main" by convention).
	ID string `json:"id"`
	// MimeType declares the contents format (e.g. "application/xml").
	MimeType string `json:"mimeType"`
	// Contents is kept raw; extractors decode it according to MimeType.
	Contents json.RawMessage `json:"contents"`
}

// Result is the slice of a reply this module consumes: a result's client data
// collection, in engine order. Everything else in the reply belongs to the
// transport layer and is ignored here.
type Result struct {
	// URI of the matched document, when the reply carries one.
	URI string `json:"uri,omitempty"`
	// ClientData payloads attached to the result.
	ClientData []ClientData `json:"clientData"`
}
