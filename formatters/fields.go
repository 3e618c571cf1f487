package formatters

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

type field struct {
	Key   string
	Value string
}

// flatten reduces any JSON-serializable value to dotted key/value pairs,
// sorted by key. Slices are indexed as key.N.
func flatten(data interface{}) ([]field, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten %T: %w", data, err)
	}
	var generic interface{}
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}

	values := map[string]string{}
	walk("", generic, values)

	keys := lo.Keys(values)
	sort.Strings(keys)
	return lo.Map(keys, func(k string, _ int) field {
		return field{Key: k, Value: values[k]}
	}), nil
}

func walk(prefix string, v interface{}, out map[string]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			walk(join(k), child, out)
		}
	case []interface{}:
		for i, child := range val {
			walk(join(fmt.Sprint(i)), child, out)
		}
	case nil:
		out[prefix] = ""
	case float64:
		out[prefix] = fmt.Sprintf("%v", val)
	default:
		out[prefix] = fmt.Sprint(val)
	}
}

// table returns the header and rows of data, using Tabular when implemented
// and a single key/value row otherwise
func table(data interface{}) ([]string, [][]string, error) {
	if t, ok := data.(Tabular); ok {
		return t.Headers(), t.Rows(), nil
	}
	fields, err := flatten(data)
	if err != nil {
		return nil, nil, err
	}
	headers := lo.Map(fields, func(f field, _ int) string { return f.Key })
	row := lo.Map(fields, func(f field, _ int) string { return f.Value })
	return headers, [][]string{row}, nil
}
