package clientdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/afstext/api"
)

func managerFixture(t *testing.T) *Manager {
	t.Helper()
	records := []api.ClientData{
		{ID: "main", MimeType: MimeTextXML, Contents: json.RawMessage(`"<data><title>Hello</title></data>"`)},
		{ID: "aux", MimeType: MimeApplicationJSON, Contents: json.RawMessage(`{"data": [{"afs:t": "KwicString", "text": "some text"}]}`)},
	}
	mgr, err := NewManager(records, WithLogger(NopLogger()))
	require.NoError(t, err)
	return mgr
}

func TestManager_Lookup(t *testing.T) {
	mgr := managerFixture(t)

	assert.Equal(t, 2, mgr.Len())
	assert.Equal(t, []string{"aux", "main"}, mgr.IDs())

	ex, err := mgr.Get("main")
	require.NoError(t, err)
	assert.Equal(t, "main", ex.ID())

	t.Run("unknown id", func(t *testing.T) {
		_, err := mgr.Get("nope")
		var uerr *UnknownClientDataIDError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "nope", uerr.ID)

		_, err = mgr.Text("nope", nil)
		assert.ErrorAs(t, err, &uerr)

		_, err = mgr.TextAt("nope", "/data", nil)
		assert.ErrorAs(t, err, &uerr)
	})
}

func TestManager_RendersThroughExtractors(t *testing.T) {
	mgr := managerFixture(t)

	got, err := mgr.Text("main", nil)
	require.NoError(t, err)
	assert.Equal(t, `<data><title>Hello</title></data>`, got)

	got, err = mgr.TextAt("main", "/data/title", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)

	got, err = mgr.TextAt("aux", "data", nil)
	require.NoError(t, err)
	assert.Equal(t, "some text", got)
}

func TestNewManager_LastRecordWins(t *testing.T) {
	records := []api.ClientData{
		{ID: "dup", MimeType: MimeTextXML, Contents: json.RawMessage(`"<data>first</data>"`)},
		{ID: "dup", MimeType: MimeTextXML, Contents: json.RawMessage(`"<data>second</data>"`)},
	}
	mgr, err := NewManager(records, WithLogger(NopLogger()))
	require.NoError(t, err)

	assert.Equal(t, 1, mgr.Len())
	got, err := mgr.Text("dup", nil)
	require.NoError(t, err)
	assert.Equal(t, `<data>second</data>`, got)
}

func TestNewManager_PropagatesFactoryErrors(t *testing.T) {
	records := []api.ClientData{
		{ID: "ok", MimeType: MimeTextXML, Contents: json.RawMessage(`"<data/>"`)},
		{ID: "bad", MimeType: "image/png", Contents: json.RawMessage(`"…"`)},
	}
	_, err := NewManager(records, WithLogger(NopLogger()))
	var uerr *UnsupportedMimeTypeError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, err.Error(), `"bad"`, "the failing record id is part of the message")
}

func TestNewManager_Empty(t *testing.T) {
	mgr, err := NewManager(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, mgr.Len())
	assert.Empty(t, mgr.IDs())
}
