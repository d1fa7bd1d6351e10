package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaVersion is the current version of the persisted document envelope.
// Bump it together with a migration path when a stored shape changes.
const SchemaVersion = 1

// ErrUnknownSchema is returned when a stored document carries a schema
// version this build does not understand. Callers must reject such data
// instead of trusting it.
var ErrUnknownSchema = errors.New("unknown document schema")

// document is the envelope every whole-document value (users, cart, orders)
// is wrapped in before being written to the key-value store.
type document struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// MarshalDocument wraps v in a versioned envelope and serializes it.
func MarshalDocument(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document data: %w", err)
	}
	return json.Marshal(document{SchemaVersion: SchemaVersion, Data: data})
}

// UnmarshalDocument validates the envelope version and decodes the payload
// into v. Data with an unexpected version fails with ErrUnknownSchema.
func UnmarshalDocument(raw []byte, v any) error {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal document envelope: %w", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: version %d", ErrUnknownSchema, doc.SchemaVersion)
	}
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return fmt.Errorf("failed to unmarshal document data: %w", err)
	}
	return nil
}
