package filter

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which field of a Value is set.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBytes
	KindText
	KindInt64
	KindFloat64
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	}
	return "invalid"
}

// Value is an element that can be inserted into or looked up in a filter.
// The zero Value is invalid and cannot be hashed.
type Value struct {
	kind Kind
	b    []byte
	s    string
	n    uint64 // int64 bits or float64 bits
}

func Bytes(b []byte) Value    { return Value{kind: KindBytes, b: b} }
func Text(s string) Value     { return Value{kind: KindText, s: s} }
func Int64(i int64) Value     { return Value{kind: KindInt64, n: uint64(i)} }
func Float64(f float64) Value { return Value{kind: KindFloat64, n: math.Float64bits(f)} }

func (v Value) Kind() Kind { return v.kind }

// Raw returns the bytes hashed for Bytes and Text values, nil otherwise.
func (v Value) Raw() []byte {
	switch v.kind {
	case KindBytes:
		return v.b
	case KindText:
		return []byte(v.s)
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindBytes:
		return fmt.Sprintf("b%q", v.b)
	case KindText:
		return strconv.Quote(v.s)
	case KindInt64:
		return strconv.FormatInt(int64(v.n), 10)
	case KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.n), 'g', -1, 64)
	}
	return "<invalid>"
}

// ValueOf resolves a Go value into a Value. Only byte slices, strings,
// integers that fit in an int64 and floats are accepted.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		if t.kind == KindInvalid {
			return Value{}, fmt.Errorf("%w: zero Value", ErrType)
		}
		return t, nil
	case []byte:
		return Bytes(t), nil
	case string:
		return Text(t), nil
	case int:
		return Int64(int64(t)), nil
	case int8:
		return Int64(int64(t)), nil
	case int16:
		return Int64(int64(t)), nil
	case int32:
		return Int64(int64(t)), nil
	case int64:
		return Int64(t), nil
	case uint:
		return unsignedValue(uint64(t))
	case uint8:
		return Int64(int64(t)), nil
	case uint16:
		return Int64(int64(t)), nil
	case uint32:
		return Int64(int64(t)), nil
	case uint64:
		return unsignedValue(t)
	case float32:
		return Float64(float64(t)), nil
	case float64:
		return Float64(t), nil
	}
	return Value{}, fmt.Errorf("%w: %T (only []byte, string, integers and floats are supported)", ErrType, x)
}

func unsignedValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d does not fit in int64", ErrType, u)
	}
	return Int64(int64(u)), nil
}
