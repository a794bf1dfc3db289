package format

import (
	"fmt"
	"math"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// normalize rewrites a decoded document into the value space of JSON:
// objects keyed by strings, arrays, strings, finite numbers, booleans and
// null. Date/time values become their textual form.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return val, nil

	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("%v cannot be represented in JSON", val)
		}
		return val, nil
	case float32:
		return normalize(float64(val))

	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case toml.LocalDateTime:
		return val.String(), nil
	case toml.LocalDate:
		return val.String(), nil
	case toml.LocalTime:
		return val.String(), nil

	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil

	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = n
		}
		return out, nil

	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, err := mapKey(k)
			if err != nil {
				return nil, err
			}
			n, err := normalize(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = n
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// mapKey renders a scalar YAML mapping key as a JSON object key.
func mapKey(k any) (string, error) {
	switch key := k.(type) {
	case string:
		return key, nil
	case nil:
		return "null", nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(key), nil
	case time.Time:
		return key.Format(time.RFC3339Nano), nil
	default:
		return "", fmt.Errorf("mapping key of type %T cannot be an object key", k)
	}
}
