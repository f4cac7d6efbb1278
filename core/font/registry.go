package font

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	xfont "golang.org/x/image/font"
)

// Variant describes one concrete font asset within a family: the path of
// the asset inside its bundle, tagged with weight and slant.
// A Variant is immutable once constructed.
type Variant struct {
	AssetPath string
	Weight    Weight
	Style     xfont.Style
}

// Registry maps family names to their ordered variant lists. Family names
// are case-sensitive, as given in the manifest. The order of variants
// within a family is the order of first appearance; variant matching uses
// it as a tie-break, so it must be preserved.
//
// A Registry is populated once, by the manifest loader, and is read-only
// afterwards.
type Registry struct {
	families *linkedhashmap.Map // family name -> []Variant
}

// NewRegistry creates an empty family registry.
func NewRegistry() *Registry {
	return &Registry{families: linkedhashmap.New()}
}

// AddVariant appends a variant to a family's variant list, creating the
// family on first use. A family name occurring twice extends the existing
// list rather than replacing it.
func (r *Registry) AddVariant(family string, v Variant) {
	var variants []Variant
	if vs, ok := r.families.Get(family); ok {
		variants = vs.([]Variant)
	}
	r.families.Put(family, append(variants, v))
}

// Variants returns a family's variant list, or nil if the family is
// unknown. Callers must not modify the returned slice.
func (r *Registry) Variants(family string) []Variant {
	if vs, ok := r.families.Get(family); ok {
		return vs.([]Variant)
	}
	return nil
}

// Families returns all family names in manifest order.
func (r *Registry) Families() []string {
	keys := r.families.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.(string))
	}
	return names
}

// Size returns the number of families in the registry.
func (r *Registry) Size() int {
	return r.families.Size()
}

// LogFamilies is a helper to dump the registry contents to the
// trace-file (log-level Debug).
func (r *Registry) LogFamilies() {
	tracer().Debugf("--- registered families ---")
	for _, name := range r.Families() {
		for _, v := range r.Variants(name) {
			tracer().Debugf("family [%s] = %v %d %s", name, v.AssetPath, v.Weight, styleString(v.Style))
		}
	}
	tracer().Debugf("---------------------------")
}

func styleString(s xfont.Style) string {
	switch s {
	case xfont.StyleItalic:
		return "italic"
	case xfont.StyleOblique:
		return "oblique"
	}
	return "normal"
}
