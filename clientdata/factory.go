package clientdata

import (
	"bytes"

	"github.com/agentic-research/afstext/api"
)

// Mime types accepted by New. Matching is exact: the engine emits these four
// literals and nothing else, so there is no parameter or wildcard handling.
const (
	MimeTextXML         = "text/xml"
	MimeApplicationXML  = "application/xml"
	MimeTextJSON        = "text/json"
	MimeApplicationJSON = "application/json"
)

// New builds the extractor matching the record's mime type. XML and JSON
// contents are parsed eagerly here, so a non-nil extractor is always ready to
// answer queries. Records missing the id, mime type or contents are refused
// with a MissingFieldError, unrecognized mime types with an
// UnsupportedMimeTypeError.
func New(record api.ClientData, opts ...Option) (Extractor, error) {
	if record.ID == "" {
		return nil, &MissingFieldError{Field: "id"}
	}
	if record.MimeType == "" {
		return nil, &MissingFieldError{Field: "mimeType"}
	}
	if len(bytes.TrimSpace(record.Contents)) == 0 {
		return nil, &MissingFieldError{Field: "contents"}
	}
	switch record.MimeType {
	case MimeTextXML, MimeApplicationXML:
		return NewXMLExtractor(record, opts...)
	case MimeTextJSON, MimeApplicationJSON:
		return NewJSONExtractor(record, opts...)
	default:
		return nil, &UnsupportedMimeTypeError{MimeType: record.MimeType}
	}
}
