package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/agentic-research/afstext/api"
	"github.com/agentic-research/afstext/clientdata"
)

// loadRecords reads client data records from a reply file. The file holds
// either a result envelope with a clientData array or a bare JSON array of
// records.
func loadRecords(path string) ([]api.ClientData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []api.ClientData
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return records, nil
	}
	var result api.Result
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return result.ClientData, nil
}

// loadManager builds the extractor manager for a reply file, wiring the CLI
// logger into extraction diagnostics.
func loadManager(path string) (*clientdata.Manager, error) {
	records, err := loadRecords(path)
	if err != nil {
		return nil, err
	}
	return clientdata.NewManager(records, clientdata.WithLogger(clientdata.NewLogger(logger)))
}
