package sbbf

import (
	"fmt"
	"slices"

	"github.com/rag-nar1/abloom/filter"
)

// SerializableFilter is a split block Bloom filter whose hashes are stable
// across processes. Only bytes, text, int64 and float64 values are accepted.
type SerializableFilter struct {
	store
	hasher filter.ContentHasher
}

func NewSerializable(capacity uint64, fpRate float64) (*SerializableFilter, error) {
	s, err := newStore(capacity, fpRate)
	if err != nil {
		return nil, err
	}
	return &SerializableFilter{store: s}, nil
}

// NewWithMode builds a fast Filter, or a SerializableFilter when serializable
// is set.
func NewWithMode(capacity uint64, fpRate float64, serializable bool) (filter.Filter, error) {
	if serializable {
		f, err := NewSerializable(capacity, fpRate)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	f, err := New(capacity, fpRate)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *SerializableFilter) Serializable() bool { return true }

func (f *SerializableFilter) Insert(v filter.Value) error {
	h, err := f.hasher.Hash(v)
	if err != nil {
		return err
	}
	f.insertHash(h)
	return nil
}

func (f *SerializableFilter) InsertAny(x any) error {
	v, err := filter.ValueOf(x)
	if err != nil {
		return err
	}
	return f.Insert(v)
}

func (f *SerializableFilter) Update(values []filter.Value) error { return filter.Update(f, values) }
func (f *SerializableFilter) UpdateAny(items []any) error         { return filter.UpdateAny(f, items) }

func (f *SerializableFilter) InsertHash(hash uint64) { f.insertHash(hash) }

func (f *SerializableFilter) Contains(v filter.Value) (bool, error) {
	h, err := f.hasher.Hash(v)
	if err != nil {
		return false, err
	}
	return f.containsHash(h), nil
}

func (f *SerializableFilter) ContainsAny(x any) (bool, error) {
	v, err := filter.ValueOf(x)
	if err != nil {
		return false, err
	}
	return f.Contains(v)
}

func (f *SerializableFilter) ContainsHash(hash uint64) bool { return f.containsHash(hash) }

func (f *SerializableFilter) Copy() *SerializableFilter {
	return &SerializableFilter{store: f.store.clone()}
}

func (f *SerializableFilter) Compatible(other *SerializableFilter) error {
	return filter.Compatible(f, other)
}

func (f *SerializableFilter) Union(other *SerializableFilter) (*SerializableFilter, error) {
	c := f.Copy()
	if err := c.UnionInPlace(other); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *SerializableFilter) UnionInPlace(other *SerializableFilter) error {
	if err := f.Compatible(other); err != nil {
		return err
	}
	if !f.orIn(&other.store) {
		return fmt.Errorf("%w (block count %d/%d)", filter.ErrMismatch, f.blockCount, other.blockCount)
	}
	return nil
}

func (f *SerializableFilter) Equal(other *SerializableFilter) bool {
	if f == other {
		return true
	}
	if other == nil || !f.sameShape(&other.store) {
		return false
	}
	return slices.Equal(f.blocks, other.blocks)
}

var (
	_ filter.Filter     = (*SerializableFilter)(nil)
	_ filter.Serializer = (*SerializableFilter)(nil)
)
