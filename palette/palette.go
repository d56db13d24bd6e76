// Package palette maps material names to linear colors through per-category
// lookup tables.
//
// A Table groups CategoryMaps under a category key such as "sk" (roof type)
// or "pk" (surface type). Lookups never fail on missing data: an unknown
// category or an unknown name resolves to DefaultHex (opaque white), so a
// batch over hundreds of materials cannot be aborted by one unmapped name.
package palette

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/matcolor"
)

// DefaultHex is the color used when a category or name has no entry.
const DefaultHex = "#ffffff"

// ErrDuplicateKey is returned when two keys of a CategoryMap normalize to
// the same token.
var ErrDuplicateKey = errors.New("palette: duplicate key after normalization")

// CategoryMap maps a material name token to an sRGB hex color.
type CategoryMap map[string]string

// Table maps a category key to its CategoryMap.
type Table map[string]CategoryMap

// Token returns the lookup key for a raw material name: the part before the
// first '.', in Unicode NFC. Editors append ".001", ".002", ... to duplicate
// names, so "sedlova.003" and "sedlova" share the token "sedlova".
func Token(name string) string {
	name, _, _ = strings.Cut(name, ".")
	return norm.NFC.String(name)
}

// Flat wraps a single CategoryMap as a Table under the empty category key.
func Flat(m CategoryMap) Table {
	return Table{"": m}
}

// Lookup returns the hex color for name in category, or DefaultHex.
// found reports whether the table had an entry. Keys are compared in NFC,
// so a table written with decomposed accents still matches; keys that are
// already NFC take the direct path.
func (t Table) Lookup(name, category string) (hex string, found bool) {
	m := t[category]
	tok := Token(name)
	if hex, found = m[tok]; found {
		return hex, true
	}
	for key, v := range m {
		if !norm.NFC.IsNormalString(key) && norm.NFC.String(key) == tok {
			return v, true
		}
	}
	return DefaultHex, false
}

// Categories returns the category keys in sorted order.
func (t Table) Categories() []string {
	return slices.Sorted(maps.Keys(t))
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for cat, m := range t {
		out[cat] = maps.Clone(m)
	}
	return out
}

// Validate checks that every entry is a well-formed hex color.
// All problems are reported, joined into one error.
func (t Table) Validate() error {
	var errs []error
	for _, cat := range t.Categories() {
		m := t[cat]
		for _, name := range slices.Sorted(maps.Keys(m)) {
			if _, err := matcolor.ParseHex(m[name]); err != nil {
				errs = append(errs, fmt.Errorf("palette: %s/%s: %w", cat, name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Normalize returns a copy of the table whose names are in NFC.
// Two names that collapse to the same key are an error.
func (t Table) Normalize() (Table, error) {
	out := make(Table, len(t))
	var errs []error
	for _, cat := range t.Categories() {
		m := t[cat]
		nm := make(CategoryMap, len(m))
		for _, name := range slices.Sorted(maps.Keys(m)) {
			key := norm.NFC.String(name)
			if _, dup := nm[key]; dup {
				errs = append(errs, fmt.Errorf("%w: %s/%q", ErrDuplicateKey, cat, key))
				continue
			}
			nm[key] = m[name]
		}
		out[cat] = nm
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve maps a material name to a linear color using table[category].
// Missing categories and names resolve to DefaultHex. The only error is a
// malformed hex value stored in the table.
func Resolve(name, category string, table Table) (matcolor.RGBA, error) {
	hex, found := table.Lookup(name, category)
	if !found {
		matcolor.Logger().Debug("palette: no entry, using default",
			"material", name, "category", category)
	}
	return matcolor.DecodeHex(hex)
}

// ResolveFlat is Resolve for a single CategoryMap without a category key.
func ResolveFlat(name string, m CategoryMap) (matcolor.RGBA, error) {
	return Resolve(name, "", Flat(m))
}
