package clientdata

import "fmt"

// MissingFieldError reports a client data record that lacks a field required
// for extraction (id, mimeType or contents).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("client data record: missing field %q", e.Field)
}

// UnsupportedMimeTypeError reports a record whose mime type has no extractor.
type UnsupportedMimeTypeError struct {
	MimeType string
}

func (e *UnsupportedMimeTypeError) Error() string {
	return fmt.Sprintf("unsupported client data mime type %q", e.MimeType)
}

// MalformedXMLError reports XML contents that failed to parse at extractor
// construction, including documents the highlight repair could not fix.
type MalformedXMLError struct {
	Err error
}

func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("malformed xml client data: %v", e.Err)
}

func (e *MalformedXMLError) Unwrap() error { return e.Err }

// MalformedJSONError reports JSON contents that failed to parse at extractor
// construction.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed json client data: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// InvalidPathError reports a locator that failed to compile: an XPath
// expression for XML payloads, a JSONPath expression for JSON ones.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid client data path %q: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// UnknownClientDataIDError reports a lookup for a payload id the manager does
// not hold.
type UnknownClientDataIDError struct {
	ID string
}

func (e *UnknownClientDataIDError) Error() string {
	return fmt.Sprintf("unknown client data id %q", e.ID)
}
