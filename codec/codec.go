// Package codec centralizes how series and frames are rendered to bytes.
//
// Every Codec handles any value that encoding/json can handle, including
// *series.Series and *frame.DataFrame, which implement json.Marshaler.
package codec

import (
	"fmt"

	"github.com/hupe1980/labelframe/scalar"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// DecodeRecords decodes a JSON array of objects into records suitable for
// frame.FromRecords. null becomes the missing marker.
func DecodeRecords(c Codec, data []byte) ([]map[string]scalar.Value, error) {
	if c == nil {
		c = Default
	}
	var records []map[string]scalar.Value
	if err := c.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("codec %s: decode records: %w", c.Name(), err)
	}
	return records, nil
}

// DecodeValues decodes a JSON array into values suitable for series.New.
func DecodeValues(c Codec, data []byte) ([]scalar.Value, error) {
	if c == nil {
		c = Default
	}
	var values []scalar.Value
	if err := c.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("codec %s: decode values: %w", c.Name(), err)
	}
	return values, nil
}
