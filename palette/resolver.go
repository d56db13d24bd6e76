package palette

import (
	"fmt"

	"github.com/gogpu/matcolor"
)

// Option configures a Resolver during creation.
type Option func(*resolverOptions)

type resolverOptions struct {
	defaultHex string
}

func defaultOptions() resolverOptions {
	return resolverOptions{defaultHex: DefaultHex}
}

// WithDefault sets the color used for unknown categories and names.
// An empty string keeps DefaultHex.
func WithDefault(hex string) Option {
	return func(o *resolverOptions) {
		if hex != "" {
			o.defaultHex = hex
		}
	}
}

// Resolver is a validated, pre-decoded view of a Table.
//
// All hex values are checked once by NewResolver, so Resolve cannot fail.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	table  Table
	colors map[string]map[string]matcolor.RGBA
	def    matcolor.RGBA
	defHex string
}

// NewResolver validates and decodes every entry of t.
// The table is copied; later edits to t do not affect the Resolver.
func NewResolver(t Table, opts ...Option) (*Resolver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	def, err := matcolor.DecodeHex(o.defaultHex)
	if err != nil {
		return nil, fmt.Errorf("palette: default color: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	nt, err := t.Normalize()
	if err != nil {
		return nil, err
	}

	colors := make(map[string]map[string]matcolor.RGBA, len(nt))
	for cat, m := range nt {
		cm := make(map[string]matcolor.RGBA, len(m))
		for name, hex := range m {
			cm[name] = matcolor.MustDecodeHex(hex)
		}
		colors[cat] = cm
	}

	matcolor.Logger().Debug("palette: resolver ready",
		"categories", len(colors), "default", o.defaultHex)

	return &Resolver{
		table:  nt,
		colors: colors,
		def:    def,
		defHex: o.defaultHex,
	}, nil
}

// Resolve returns the linear color for a material name in a category,
// or the default color when there is no entry.
func (r *Resolver) Resolve(name, category string) matcolor.RGBA {
	if c, ok := r.colors[category][Token(name)]; ok {
		return c
	}
	matcolor.Logger().Debug("palette: no entry, using default",
		"material", name, "category", category)
	return r.def
}

// Lookup returns the hex color that Resolve would decode and whether it
// came from the table rather than the default.
func (r *Resolver) Lookup(name, category string) (hex string, found bool) {
	hex, found = r.table[category][Token(name)]
	if !found {
		return r.defHex, false
	}
	return hex, true
}

// Default returns the fallback color.
func (r *Resolver) Default() matcolor.RGBA { return r.def }

// Fallback returns the fallback color as the hex string it was built from.
func (r *Resolver) Fallback() string { return r.defHex }

// Categories returns the category keys in sorted order.
func (r *Resolver) Categories() []string { return r.table.Categories() }

// Table returns a copy of the normalized table.
func (r *Resolver) Table() Table { return r.table.Clone() }
