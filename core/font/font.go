package font

import (
	"os"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Typeface is a decoded font binary, usable by a rendering backend.
// Implementations report the styling baked into the binary, which drives
// the synthetic bold/italic decision when a requested style has no real
// asset.
type Typeface interface {
	Bold() bool
	Italic() bool
}

// ScalableFont is an in-memory representation of an outline-font of type
// TTF or OTF. The raw binary is retained because the SFNT container
// references it without copying.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, if loaded from disk
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
	style    xfont.Style
	weight   Weight
}

var _ Typeface = &ScalableFont{}

// Bold reports whether the font binary itself is a bold cut.
func (sf *ScalableFont) Bold() bool {
	return sf.weight >= WeightSemiBold
}

// Italic reports whether the font binary itself is an italic or oblique cut.
func (sf *ScalableFont) Italic() bool {
	return sf.style != xfont.StyleNormal
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont decodes an OpenType font (TTF or OTF) from memory.
// The returned font keeps a reference to fbytes.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	subfamily, _ := f.SFNT.Name(nil, sfnt.NameIDSubfamily)
	f.style, f.weight = GuessStyleAndWeight(subfamily)
	if f.style == xfont.StyleNormal {
		if post := f.SFNT.PostTable(); post != nil && post.ItalicAngle != 0 {
			f.style = xfont.StyleItalic
		}
	}
	tracer().Debugf("loaded and parsed SFNT %s (%s)", f.Fontname, subfamily)
	return f, nil
}

// PrepareCase prepares a typecase from the font at a given size and
// resolution.
func (sf *ScalableFont) PrepareCase(fontsize float64, dpi float64) (*TypeCase, error) {
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Infof("font size must be 5pt ≤ size ≤ 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size: fontsize,
		DPI:  dpi,
	}
	face, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, err
	}
	return &TypeCase{
		scalableFontParent: sf,
		face:               face,
		size:               fontsize,
	}, nil
}

// TypeCase is a scaled font, i.e. a font prepared at a certain size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// ScalableFontParent returns the font this typecase was derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the prepared font face.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PtSize returns the point-size of the typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Fontname = "Go Sans"
	gofont.Filepath = "internal"
	return gofont
}
