package formengine

import (
	"math"
	"strconv"
)

// Kind discriminates the typed value variants.
type Kind int

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
)

// Value is a typed field value with an explicit absent variant. Absence is
// deliberately distinct from false/0/"" so that "not yet answered" never
// collapses into "answered with a zero value".
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []string
}

// Absent is the zero Value.
var Absent = Value{}

func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }
func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func ListValue(l []string) Value { return Value{kind: KindList, list: l} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

func (v Value) Bool() bool     { return v.b }
func (v Value) Int() int64     { return v.i }
func (v Value) String() string { return v.s }
func (v Value) List() []string { return v.list }

// Float returns the numeric content for both integer and decimal variants.
func (v Value) Float() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Interface exposes the value for JSON payload assembly. Absent maps to nil
// and must be filtered out by the caller.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		return v.list
	default:
		return nil
	}
}

// Coerce turns a raw widget value into a typed Value according to the
// declared field type. Raw values are whatever generic JSON decoding
// produces: nil, bool, float64, string, []interface{} or []string.
func Coerce(raw interface{}, t FieldType) Value {
	return behaviorFor(t).coerce(raw)
}

func coerceBoolean(raw interface{}) Value {
	if raw == nil {
		return Absent
	}
	switch v := raw.(type) {
	case bool:
		return BoolValue(v)
	case string:
		return BoolValue(v != "")
	case float64:
		return BoolValue(v != 0)
	default:
		return BoolValue(true)
	}
}

func coerceInteger(raw interface{}) Value {
	f, ok := rawNumber(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Absent
	}
	return IntValue(int64(math.Trunc(f)))
}

func coerceDecimal(raw interface{}) Value {
	f, ok := rawNumber(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Absent
	}
	return FloatValue(f)
}

func coerceString(raw interface{}) Value {
	s, ok := rawScalarString(raw)
	if !ok || s == "" {
		return Absent
	}
	return StringValue(s)
}

func coerceMultiEnum(raw interface{}) Value {
	if raw == nil {
		return Absent
	}
	var list []string
	switch v := raw.(type) {
	case []string:
		list = v
	case []interface{}:
		list = make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := rawScalarString(item); ok {
				list = append(list, s)
			}
		}
	default:
		// A bare scalar becomes a one-element list; an empty scalar is
		// dropped so the result reads as absent.
		if s, ok := rawScalarString(raw); ok && s != "" {
			list = []string{s}
		}
	}
	if len(list) == 0 {
		return Absent
	}
	return ListValue(list)
}

func rawNumber(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if v == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func rawScalarString(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}
