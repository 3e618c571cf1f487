package converter

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Source is the svg input of a request: either a single document or an
// ordered batch of documents. Each entry is inline SVG markup or a path to an
// SVG file.
type Source struct {
	items []string
	batch bool
}

// Single returns a source converting one document
func Single(svg string) Source {
	return Source{items: []string{svg}}
}

// Batch returns a source converting each document in order
func Batch(svgs ...string) Source {
	items := make([]string, len(svgs))
	copy(items, svgs)
	return Source{items: items, batch: true}
}

// IsBatch reports whether the output should be a list of paths
func (s Source) IsBatch() bool {
	return s.batch
}

// Items returns the documents to convert
func (s Source) Items() []string {
	return s.items
}

func (s Source) Len() int {
	return len(s.items)
}

// IsZero reports a missing source. An empty batch is not zero, it fails the
// batch size check instead.
func (s Source) IsZero() bool {
	return !s.batch && (len(s.items) == 0 || s.items[0] == "")
}

// Type returns "batch" or "single"
func (s Source) Type() string {
	if s.batch {
		return "batch"
	}
	return "single"
}

func (s Source) value() any {
	if s.batch {
		return s.items
	}
	if len(s.items) == 0 {
		return ""
	}
	return s.items[0]
}

func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value())
}

func (s *Source) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Single(single)
		return nil
	}

	var batch []string
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("svg must be a string or a list of strings: %w", err)
	}
	*s = Batch(batch...)
	return nil
}

func (s Source) MarshalYAML() (interface{}, error) {
	return s.value(), nil
}

func (s *Source) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = Single(single)
	case yaml.SequenceNode:
		var batch []string
		if err := value.Decode(&batch); err != nil {
			return err
		}
		*s = Batch(batch...)
	default:
		return fmt.Errorf("svg must be a string or a list of strings (line %d)", value.Line)
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler
func (s *Source) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		*s = Single(v)
	case []interface{}:
		batch := make([]string, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("svg[%d] must be a string, got %T", i, item)
			}
			batch[i] = str
		}
		*s = Batch(batch...)
	default:
		return fmt.Errorf("svg must be a string or a list of strings, got %T", data)
	}
	return nil
}
