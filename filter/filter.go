package filter

import "fmt"

// Filter is the capability shared by every membership filter in this module.
type Filter interface {
	Insert(v Value) error
	Contains(v Value) (bool, error)
	Clear()
	IsEmpty() bool

	Capacity() uint64
	FPRate() float64
	K() int
	ByteCount() uint64
	BitCount() uint64
	Serializable() bool
}

// Serializer is implemented by filters whose hashes are stable across
// processes.
type Serializer interface {
	Serialize() []byte
}

// Serialize encodes f, or fails with ErrNotSerializable when f hashes with a
// per-process seed.
func Serialize(f Filter) ([]byte, error) {
	s, ok := f.(Serializer)
	if !ok || !f.Serializable() {
		return nil, ErrNotSerializable
	}
	return s.Serialize(), nil
}

// Update inserts values in order and stops at the first failure. Values
// inserted before the failure stay in f.
func Update(f Filter, values []Value) error {
	for i, v := range values {
		if err := f.Insert(v); err != nil {
			return fmt.Errorf("update: element %d: %w", i, err)
		}
	}
	return nil
}

// UpdateAny is Update over arbitrary Go values resolved with ValueOf.
func UpdateAny(f Filter, items []any) error {
	for i, x := range items {
		v, err := ValueOf(x)
		if err != nil {
			return fmt.Errorf("update: element %d: %w", i, err)
		}
		if err := f.Insert(v); err != nil {
			return fmt.Errorf("update: element %d: %w", i, err)
		}
	}
	return nil
}

// Compatible reports whether two filters can be combined or compared.
func Compatible(a, b Filter) error {
	if a.Capacity() != b.Capacity() || a.FPRate() != b.FPRate() || a.Serializable() != b.Serializable() {
		return fmt.Errorf("%w (capacity %d/%d, fp_rate %v/%v, serializable %t/%t)", ErrMismatch,
			a.Capacity(), b.Capacity(), a.FPRate(), b.FPRate(), a.Serializable(), b.Serializable())
	}
	return nil
}
