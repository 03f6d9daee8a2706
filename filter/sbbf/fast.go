package sbbf

import (
	"fmt"
	"slices"

	"github.com/rag-nar1/abloom/filter"
)

// Filter is a split block Bloom filter keyed by a per-process hash seed.
// Its contents are only meaningful inside the process that built it, so it
// cannot be serialized; use SerializableFilter for that.
type Filter struct {
	store
	hasher filter.FastHasher
}

type Option func(*Filter)

// WithEngine selects the byte hash used for bytes and text values.
// Filters built with different engines are not compatible.
func WithEngine(e filter.Engine) Option {
	return func(f *Filter) { f.hasher.Engine = e }
}

func New(capacity uint64, fpRate float64, opts ...Option) (*Filter, error) {
	s, err := newStore(capacity, fpRate)
	if err != nil {
		return nil, err
	}
	f := &Filter{store: s}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Filter) Engine() filter.Engine { return f.hasher.Engine }
func (f *Filter) Serializable() bool    { return false }

func (f *Filter) Insert(v filter.Value) error {
	h, err := f.hasher.Hash(v)
	if err != nil {
		return err
	}
	f.insertHash(h)
	return nil
}

func (f *Filter) InsertAny(x any) error {
	v, err := filter.ValueOf(x)
	if err != nil {
		return err
	}
	return f.Insert(v)
}

func (f *Filter) Update(values []filter.Value) error { return filter.Update(f, values) }
func (f *Filter) UpdateAny(items []any) error         { return filter.UpdateAny(f, items) }

// InsertHash sets the bits for an already computed hash.
func (f *Filter) InsertHash(hash uint64) { f.insertHash(hash) }

func (f *Filter) Contains(v filter.Value) (bool, error) {
	h, err := f.hasher.Hash(v)
	if err != nil {
		return false, err
	}
	return f.containsHash(h), nil
}

func (f *Filter) ContainsAny(x any) (bool, error) {
	v, err := filter.ValueOf(x)
	if err != nil {
		return false, err
	}
	return f.Contains(v)
}

func (f *Filter) ContainsHash(hash uint64) bool { return f.containsHash(hash) }

// Copy returns an independent deep copy.
func (f *Filter) Copy() *Filter {
	return &Filter{store: f.store.clone(), hasher: f.hasher}
}

// Compatible returns ErrMismatch unless f and other share capacity, fp_rate
// and hash engine.
func (f *Filter) Compatible(other *Filter) error {
	if err := filter.Compatible(f, other); err != nil {
		return err
	}
	if f.hasher.Engine != other.hasher.Engine {
		return fmt.Errorf("%w (engine %s/%s)", filter.ErrMismatch, f.hasher.Engine, other.hasher.Engine)
	}
	return nil
}

// Union returns a new filter holding the bitwise OR of f and other.
func (f *Filter) Union(other *Filter) (*Filter, error) {
	c := f.Copy()
	if err := c.UnionInPlace(other); err != nil {
		return nil, err
	}
	return c, nil
}

// UnionInPlace ORs other into f.
func (f *Filter) UnionInPlace(other *Filter) error {
	if err := f.Compatible(other); err != nil {
		return err
	}
	if !f.orIn(&other.store) {
		return fmt.Errorf("%w (block count %d/%d)", filter.ErrMismatch, f.blockCount, other.blockCount)
	}
	return nil
}

// Equal reports whether f and other are compatible and bit-identical. It is
// not set equality: different insert histories may collide into equal bits.
func (f *Filter) Equal(other *Filter) bool {
	if f == other {
		return true
	}
	if other == nil || f.Compatible(other) != nil {
		return false
	}
	return slices.Equal(f.blocks, other.blocks)
}

var _ filter.Filter = (*Filter)(nil)
