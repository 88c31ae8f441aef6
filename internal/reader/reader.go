// Package reader parses the JSON payloads exchanged with GeoNature: dataset
// lists, package manifests and sync settings.
//
// Readers are lenient where the payload is advisory (datasets, manifest
// entries) and strict where a partial value would be wrong (settings).
package reader

import (
	"bytes"
	"encoding/json"
)

// isBlank reports whether data holds no JSON value at all.
func isBlank(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// splitObjects returns the elements of a JSON array, or data itself when it is
// a single object.
func splitObjects(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var single json.RawMessage
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, err
	}
	return []json.RawMessage{single}, nil
}
