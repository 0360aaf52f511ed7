package cricbuzz

import (
	"strconv"
	"strings"
)

func asMap(raw any) map[string]any {
	obj, _ := raw.(map[string]any)
	return obj
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	return asMap(src[key])
}

func getSlice(src map[string]any, key string) []any {
	if src == nil {
		return nil
	}
	items, _ := src[key].([]any)
	return items
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	switch typed := src[key].(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return ""
	}
}

func getInt64(src map[string]any, key string) int64 {
	if src == nil {
		return 0
	}
	switch typed := src[key].(type) {
	case float64:
		return int64(typed)
	case int:
		return int64(typed)
	case int64:
		return typed
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(strings.TrimSpace(typed), 64)
			if ferr != nil {
				return 0
			}
			return int64(f)
		}
		return v
	default:
		return 0
	}
}

func getFloat64(src map[string]any, key string) float64 {
	if src == nil {
		return 0
	}
	switch typed := src[key].(type) {
	case float64:
		return typed
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		v, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return v
	default:
		return 0
	}
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// nonNegativeFloat also maps NaN to zero.
func nonNegativeFloat(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}
