package qiwi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type rawKind uint8

const (
	rawInvalid rawKind = iota
	rawMap
	rawText
)

// RawInput is what value objects are built from: an already decoded JSON
// object or JSON text. The zero value is invalid.
type RawInput struct {
	kind rawKind
	obj  map[string]any
	text []byte
	src  any
}

func FromMap(m map[string]any) RawInput {
	return RawInput{kind: rawMap, obj: m}
}

func FromText(s string) RawInput {
	return RawInput{kind: rawText, text: []byte(s)}
}

func FromBytes(b []byte) RawInput {
	return RawInput{kind: rawText, text: b}
}

// Raw dispatches v to the matching RawInput variant. Values that are neither
// a JSON object nor JSON text give an input rejected with ErrInvalidInputType.
func Raw(v any) RawInput {
	switch t := v.(type) {
	case RawInput:
		return t
	case map[string]any:
		return FromMap(t)
	case string:
		return FromText(t)
	case []byte:
		return FromBytes(t)
	case json.RawMessage:
		return FromBytes(t)
	default:
		return RawInput{kind: rawInvalid, src: v}
	}
}

func (in RawInput) object(typeName string) (object, error) {
	switch in.kind {
	case rawMap:
		if in.obj == nil {
			return object{}, malformed(typeName, "", "null object")
		}
		return object{typeName: typeName, fields: in.obj}, nil
	case rawText:
		v, err := decodeJSON(in.text)
		if err != nil {
			return object{}, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, typeName, err)
		}
		m, ok := v.(map[string]any)
		if !ok {
			return object{}, malformed(typeName, "", fmt.Sprintf("expected a json object, got %s", kindOf(v)))
		}
		return object{typeName: typeName, fields: m}, nil
	default:
		return object{}, fmt.Errorf("%w: got %T", ErrInvalidInputType, in.src)
	}
}

func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after json value")
	}
	return v, nil
}

// object is a decoded JSON object together with the name of the type being
// built from it, so that every field error names its owner.
type object struct {
	typeName string
	fields   map[string]any
}

// lookup reports the value under key; a JSON null counts as absent.
func (o object) lookup(key string) (any, bool) {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (o object) missing(key string) error {
	return malformed(o.typeName, key, "required field is missing")
}

func (o object) wrongType(key, want string, v any) error {
	return malformed(o.typeName, key, fmt.Sprintf("expected %s, got %s", want, kindOf(v)))
}

func (o object) str(key string) (string, error) {
	v, ok := o.lookup(key)
	if !ok {
		return "", o.missing(key)
	}
	return o.asString(key, v)
}

func (o object) optStr(key string) (*string, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, nil
	}
	s, err := o.asString(key, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// asString accepts numbers too: the service sends identifiers either way.
func (o object) asString(key string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	}
	return "", o.wrongType(key, "string", v)
}

func (o object) integer(key string) (int64, error) {
	v, ok := o.lookup(key)
	if !ok {
		return 0, o.missing(key)
	}
	return o.asInt(key, v)
}

func (o object) optInt(key string) (*int64, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, nil
	}
	n, err := o.asInt(key, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// wholeInt converts f when it is a whole number that fits int64. 2^63 itself
// does not fit, so the upper bound is exclusive.
func wholeInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func (o object) asInt(key string, v any) (int64, error) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		if f, err := t.Float64(); err == nil {
			if n, ok := wholeInt(f); ok {
				return n, nil
			}
		}
	case float64:
		if n, ok := wholeInt(t); ok {
			return n, nil
		}
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, o.wrongType(key, "integer", v)
}

func (o object) boolean(key string) (bool, error) {
	v, ok := o.lookup(key)
	if !ok {
		return false, o.missing(key)
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, o.wrongType(key, "boolean", v)
	}
	return b, nil
}

func (o object) optBool(key string) (bool, error) {
	if _, ok := o.lookup(key); !ok {
		return false, nil
	}
	return o.boolean(key)
}

func (o object) amount(key string) (decimal.Decimal, error) {
	v, ok := o.lookup(key)
	if !ok {
		return decimal.Zero, o.missing(key)
	}
	return o.asDecimal(key, v)
}

func (o object) optAmount(key string) (*decimal.Decimal, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, nil
	}
	d, err := o.asDecimal(key, v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (o object) asDecimal(key string, v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d, nil
		}
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(t)); err == nil {
			return d, nil
		}
	}
	return decimal.Zero, o.wrongType(key, "number", v)
}

// optTime reads a nullable timestamp.
func (o object) optTime(key string) (*time.Time, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, nil
	}
	s, isString := v.(string)
	if !isString {
		return nil, o.wrongType(key, "date string", v)
	}
	if s == "" {
		return nil, nil
	}
	t, err := DecodeDate(s)
	if err != nil {
		return nil, malformed(o.typeName, key, err.Error())
	}
	return &t, nil
}

func (o object) obj(key string) (object, error) {
	v, ok := o.lookup(key)
	if !ok {
		return object{}, o.missing(key)
	}
	return o.asObject(key, v)
}

// optObj reports found=false when the nested object is absent or null.
func (o object) optObj(key string) (object, bool, error) {
	v, ok := o.lookup(key)
	if !ok {
		return object{}, false, nil
	}
	nested, err := o.asObject(key, v)
	if err != nil {
		return object{}, false, err
	}
	return nested, true, nil
}

func (o object) asObject(key string, v any) (object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return object{}, o.wrongType(key, "object", v)
	}
	return object{typeName: o.typeName, fields: m}, nil
}

func (o object) list(key string) ([]any, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, o.missing(key)
	}
	items, isList := v.([]any)
	if !isList {
		return nil, o.wrongType(key, "array", v)
	}
	return items, nil
}

// objects reads a required array of objects, each bound to typeName.
func (o object) objects(key, typeName string) ([]object, error) {
	items, err := o.list(key)
	if err != nil {
		return nil, err
	}
	res := make([]object, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, malformed(o.typeName, fmt.Sprintf("%s[%d]", key, i),
				fmt.Sprintf("expected object, got %s", kindOf(item)))
		}
		res = append(res, object{typeName: typeName, fields: m})
	}
	return res, nil
}

// service reads a field the API documents as service information. Its shape
// is not stable, so the value is kept as decoded.
func (o object) service(key string) any {
	v, ok := o.lookup(key)
	if !ok {
		return nil
	}
	return cloneValue(v)
}

// as rebinds the object to another type name for nested construction.
func (o object) as(typeName string) object {
	return object{typeName: typeName, fields: o.fields}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneValue(val)
		}
		return s
	default:
		return v
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

// DecodeDate parses an ISO-8601 timestamp as sent by the API. The UTC offset
// of the input is preserved; timestamps without one are read as UTC.
func DecodeDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", s)
}
