package clientdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/afstext/api"
)

func TestNew_DispatchesOnMimeType(t *testing.T) {
	xmlContents := json.RawMessage(`"<data>x</data>"`)
	jsonContents := json.RawMessage(`{"k": "v"}`)

	for _, mime := range []string{MimeTextXML, MimeApplicationXML} {
		ex, err := New(api.ClientData{ID: "x", MimeType: mime, Contents: xmlContents}, WithLogger(NopLogger()))
		require.NoError(t, err, mime)
		assert.IsType(t, &XMLExtractor{}, ex, mime)
		assert.Equal(t, mime, ex.MimeType())
	}

	for _, mime := range []string{MimeTextJSON, MimeApplicationJSON} {
		ex, err := New(api.ClientData{ID: "j", MimeType: mime, Contents: jsonContents}, WithLogger(NopLogger()))
		require.NoError(t, err, mime)
		assert.IsType(t, &JSONExtractor{}, ex, mime)
		assert.Equal(t, mime, ex.MimeType())
	}
}

func TestNew_RefusesBadRecords(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		_, err := New(api.ClientData{MimeType: MimeTextJSON, Contents: json.RawMessage(`{}`)})
		var merr *MissingFieldError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "id", merr.Field)
	})

	t.Run("missing mime type", func(t *testing.T) {
		_, err := New(api.ClientData{ID: "x", Contents: json.RawMessage(`{}`)})
		var merr *MissingFieldError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "mimeType", merr.Field)
	})

	t.Run("missing contents", func(t *testing.T) {
		_, err := New(api.ClientData{ID: "x", MimeType: MimeTextXML})
		var merr *MissingFieldError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "contents", merr.Field)
	})

	t.Run("unsupported mime type", func(t *testing.T) {
		_, err := New(api.ClientData{ID: "x", MimeType: "text/html", Contents: json.RawMessage(`"<p>x</p>"`)})
		var uerr *UnsupportedMimeTypeError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "text/html", uerr.MimeType)
	})

	t.Run("mime parameters are not stripped", func(t *testing.T) {
		_, err := New(api.ClientData{ID: "x", MimeType: "text/xml; charset=utf-8", Contents: json.RawMessage(`"<data/>"`)})
		var uerr *UnsupportedMimeTypeError
		require.ErrorAs(t, err, &uerr, "matching is exact, parameters make the type unknown")
	})
}
