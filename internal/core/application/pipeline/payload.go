package pipeline

import (
	"encoding/json"
	"math"
	"strconv"
)

// Payload is the decoded "data" object of a request. A nil Payload behaves as an empty
// object, so every field reads as missing.
type Payload map[string]any

// Get returns the raw value of field.
func (p Payload) Get(field string) (any, bool) {
	v, ok := p[field]
	return v, ok
}

// Has reports whether field is present with a truthy value.
func (p Payload) Has(field string) bool {
	return IsTruthy(p[field])
}

// Text returns field as a string. Integral numbers are rendered in decimal; anything
// else that is not a string yields "".
func (p Payload) Text(field string) string {
	return Text(p[field])
}

// Integer returns field as an int when it is an integral number.
func (p Payload) Integer(field string) (int, bool) {
	return Integer(p[field])
}

// List returns field when it is a JSON array.
func (p Payload) List(field string) ([]any, bool) {
	l, ok := p[field].([]any)
	return l, ok
}

// Object converts a decoded JSON value into a Payload when it is an object.
func Object(v any) (Payload, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case Payload:
		return o, true
	default:
		return nil, false
	}
}

// IsTruthy mirrors JSON-level presence: nil, "", 0, NaN and false are missing;
// everything else, including empty arrays and objects, is present.
func IsTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	}
	if n, ok := Number(v); ok {
		return n != 0 && !math.IsNaN(n)
	}
	return true
}

// Number returns v as float64 when v is any Go numeric type or a json.Number.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Integer returns v as int when it is a number without a fractional part that fits an int.
func Integer(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return Integer(i)
		}
	}

	f, ok := Number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

// Text renders strings as-is and integral numbers in decimal.
func Text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if i, ok := Integer(v); ok {
		return strconv.Itoa(i)
	}
	return ""
}
