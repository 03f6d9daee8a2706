package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/pflag"

	"github.com/rag-nar1/abloom/filter"
	"github.com/rag-nar1/abloom/filter/bloom"
	"github.com/rag-nar1/abloom/filter/sbbf"
)

const charset = "abcdefghijklmnopqrstuvwxyz" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// engineFlag lets --engine be validated while flags are parsed.
type engineFlag struct {
	e filter.Engine
}

var _ pflag.Value = (*engineFlag)(nil)

func (f *engineFlag) String() string { return f.e.String() }
func (f *engineFlag) Type() string   { return "engine" }

func (f *engineFlag) Set(name string) error {
	e, err := filter.ParseEngine(name)
	if err != nil {
		return err
	}
	f.e = e
	return nil
}

type filterOptions struct {
	serializable bool
	engine       engineFlag
	kind         string
}

func (o *filterOptions) register(fs *pflag.FlagSet) {
	fs.BoolVar(&o.serializable, "serializable", false, "Use the cross-process content hash.")
	fs.Var(&o.engine, "engine", "Fast-mode byte hash: metro, xxh3, city or murmur3.")
	fs.StringVar(&o.kind, "kind", "sbbf", "Filter layout: sbbf or flat.")
}

// newFilter builds the filter described by the persistent sizing flags and o.
func newFilter(o *filterOptions) (filter.Filter, error) {
	switch o.kind {
	case "sbbf":
		if o.serializable {
			return sbbf.NewWithMode(capacity, fpRate, true)
		}
		f, err := sbbf.New(capacity, fpRate, sbbf.WithEngine(o.engine.e))
		if err != nil {
			return nil, err
		}
		return f, nil
	case "flat":
		var h filter.Hasher = filter.FastHasher{Engine: o.engine.e}
		if o.serializable {
			h = filter.ContentHasher{}
		}
		f, err := bloom.NewBloomFilter(capacity, fpRate, h)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: unknown filter kind %q", filter.ErrConfiguration, o.kind)
}

type keyGenerator struct {
	rnd *rand.Rand
}

func newKeyGenerator(seed int64) *keyGenerator {
	return &keyGenerator{rand.New(rand.NewSource(seed))}
}

// next returns a random key of 8 to 39 characters. Keys are not unique.
func (g *keyGenerator) next() []byte {
	b := make([]byte, 8+g.rnd.Intn(32))
	for i := range b {
		b[i] = charset[g.rnd.Intn(len(charset))]
	}
	return b
}
