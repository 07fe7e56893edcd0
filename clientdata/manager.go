package clientdata

import (
	"fmt"
	"sort"

	"github.com/agentic-research/afstext/api"
)

// Manager holds the extractors for one result's client data collection,
// keyed by payload id. The mapping is built once by NewManager and never
// mutated, so a manager is safe for concurrent readers.
type Manager struct {
	extractors map[string]Extractor
}

// NewManager builds one extractor per record. Records are processed in reply
// order and a duplicate id overwrites the earlier entry, so the last record
// wins. Any record the factory refuses aborts construction.
func NewManager(records []api.ClientData, opts ...Option) (*Manager, error) {
	extractors := make(map[string]Extractor, len(records))
	for _, record := range records {
		ex, err := New(record, opts...)
		if err != nil {
			return nil, fmt.Errorf("client data %q: %w", record.ID, err)
		}
		extractors[ex.ID()] = ex
	}
	return &Manager{extractors: extractors}, nil
}

// Get returns the extractor holding the payload id.
func (m *Manager) Get(id string) (Extractor, error) {
	ex, ok := m.extractors[id]
	if !ok {
		return nil, &UnknownClientDataIDError{ID: id}
	}
	return ex, nil
}

// Text renders the whole contents of the payload id.
func (m *Manager) Text(id string, opts *RenderOptions) (string, error) {
	ex, err := m.Get(id)
	if err != nil {
		return "", err
	}
	return ex.Text(opts)
}

// TextAt renders the portion of the payload id selected by locator. Options
// travel through opaquely; the extractor picks the strategy it understands.
func (m *Manager) TextAt(id, locator string, opts *RenderOptions) (string, error) {
	ex, err := m.Get(id)
	if err != nil {
		return "", err
	}
	return ex.TextAt(locator, opts)
}

// IDs returns the held payload ids in sorted order.
func (m *Manager) IDs() []string {
	ids := make([]string, 0, len(m.extractors))
	for id := range m.extractors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of payloads held.
func (m *Manager) Len() int {
	return len(m.extractors)
}
