package selector

import (
	xfont "golang.org/x/image/font"

	"github.com/typograf/fontsel/core"
	"github.com/typograf/fontsel/core/font"
)

// Orientation is the glyph orientation of a font request.
type Orientation int8

// Glyph orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

// Request describes an abstract font request: a family name plus style
// attributes. The zero values of Weight and Size are replaced by
// WeightNormal and a 10pt size.
//
// SyntheticBold and SyntheticItalic force the respective rendering-time
// approximation even when the resolved typeface would not need it.
type Request struct {
	Family              string
	Weight              font.Weight
	Style               xfont.Style
	Size                float64
	Orientation         Orientation
	SubpixelPositioning bool
	SyntheticBold       bool
	SyntheticItalic     bool
}

// normalized fills in defaults. Requests equal after normalization are
// the same font-data cache entry, so this must happen before the cache
// lookup.
func (r Request) normalized() Request {
	if r.Weight == 0 {
		r.Weight = font.WeightNormal
	}
	if r.Size == 0 {
		r.Size = 10.0
	}
	return r
}

// FontData is a renderable font object: a typeface reference plus the
// rendering parameters resolved from a request. FontData instances are
// created by a Selector, cached for the lifetime of the process and
// never mutated after creation.
type FontData struct {
	typeface            font.Typeface
	family              string
	size                float64
	syntheticBold       bool
	syntheticItalic     bool
	orientation         Orientation
	subpixelPositioning bool
}

// Typeface returns the decoded font binary backing this font. The
// typeface is shared with the selector's cache and must not be assumed
// to be exclusive.
func (fd *FontData) Typeface() font.Typeface {
	return fd.typeface
}

// Family returns the requested family name.
func (fd *FontData) Family() string {
	return fd.family
}

// Size returns the effective font size.
func (fd *FontData) Size() float64 {
	return fd.size
}

// SyntheticBold reports whether rendering has to embolden glyphs
// artificially because no adequately bold asset exists.
func (fd *FontData) SyntheticBold() bool {
	return fd.syntheticBold
}

// SyntheticItalic reports whether rendering has to slant glyphs
// artificially because no italic asset exists.
func (fd *FontData) SyntheticItalic() bool {
	return fd.syntheticItalic
}

// Orientation returns the glyph orientation.
func (fd *FontData) Orientation() Orientation {
	return fd.orientation
}

// SubpixelPositioning reports whether glyphs may be placed at fractional
// pixel positions.
func (fd *FontData) SubpixelPositioning() bool {
	return fd.subpixelPositioning
}

// TypeCase prepares a typecase from the font at the request's effective
// size and a given resolution. It fails for typefaces not produced by
// the built-in OpenType constructor.
func (fd *FontData) TypeCase(dpi float64) (*font.TypeCase, error) {
	sf, ok := fd.typeface.(*font.ScalableFont)
	if !ok {
		return nil, core.Error(core.EINVALID, "typeface of %s is not an OpenType font", fd.family)
	}
	return sf.PrepareCase(fd.size, dpi)
}
