package selector

import (
	"sync"

	xfont "golang.org/x/image/font"

	"github.com/typograf/fontsel/core"
	"github.com/typograf/fontsel/core/bundle"
	"github.com/typograf/fontsel/core/font"
	"github.com/typograf/fontsel/core/font/manifest"
)

// ConstructTypeface decodes a font binary into a typeface handle.
type ConstructTypeface func(data []byte) (font.Typeface, error)

// typefaceAsset is a decoded typeface along with the raw asset bytes.
// The bytes stay alive as long as the asset, because the typeface may
// reference them without copying.
type typefaceAsset struct {
	typeface font.Typeface
	data     []byte
}

// Selector resolves font requests against the families declared in a
// bundle's font manifest. It owns the family registry and both caches;
// independent Selector instances never interfere.
//
// Both caches grow monotonically for the lifetime of the Selector. In
// particular, an asset whose fetch or decode failed once is remembered
// as failed and is never retried.
type Selector struct {
	sync.Mutex
	bundle       bundle.Bundle
	construct    ConstructTypeface
	manifestPath string
	registry     *font.Registry
	typefaces    map[string]*typefaceAsset // nil entry = known failure
	fontdata     map[Request]*FontData
}

// Option configures a Selector before it reads the font manifest.
type Option func(*Selector)

// WithTypefaceConstructor replaces the built-in OpenType decoder.
func WithTypefaceConstructor(construct ConstructTypeface) Option {
	return func(s *Selector) {
		s.construct = construct
	}
}

// WithManifestPath overrides the well-known bundle path of the font
// manifest.
func WithManifestPath(path string) Option {
	return func(s *Selector) {
		s.manifestPath = path
	}
}

// New creates a Selector for the fonts packaged in a bundle. It fetches
// and parses the bundle's font manifest once; a bundle without a
// manifest, or with a malformed one, yields a selector with an empty
// registry, for which every request resolves to not-found.
func New(b bundle.Bundle, opts ...Option) *Selector {
	s := &Selector{
		bundle:       b,
		construct:    constructOpenType,
		manifestPath: manifest.AssetPath,
		typefaces:    make(map[string]*typefaceAsset),
		fontdata:     make(map[Request]*FontData),
	}
	for _, option := range opts {
		option(s)
	}
	s.registry = font.NewRegistry()
	if s.bundle == nil {
		tracer().Errorf("selector created without an asset bundle")
		return s
	}
	data, err := s.bundle.Fetch(s.manifestPath)
	if err != nil {
		tracer().Infof("bundle carries no font manifest at %s", s.manifestPath)
		return s
	}
	s.registry = manifest.Parse(data)
	return s
}

func constructOpenType(data []byte) (font.Typeface, error) {
	return font.ParseOpenTypeFont(data)
}

// Registry returns the selector's family registry.
func (s *Selector) Registry() *font.Registry {
	return s.registry
}

// LogFamilies dumps the families known to the selector to the trace-file.
func (s *Selector) LogFamilies() {
	s.registry.LogFamilies()
}

// GetFontData resolves a font request to a renderable font object.
//
// Repeated calls with an equal request return the identical cached
// object. An unknown family, a family without variants, or a variant
// whose asset cannot be fetched or decoded all yield a not-found error
// (code core.EMISSING); unknown families are not cached negatively, so
// the font-data cache only ever holds successfully resolved fonts.
func (s *Selector) GetFontData(request Request) (*FontData, error) {
	request = request.normalized()
	s.Lock()
	defer s.Unlock()
	if fd, ok := s.fontdata[request]; ok {
		return fd, nil
	}
	variants := s.registry.Variants(request.Family)
	if len(variants) == 0 {
		tracer().Debugf("no font family %s in registry", request.Family)
		return nil, core.Error(core.EMISSING, "font family not found: %s", request.Family)
	}
	variant := pickVariant(variants, request.Weight, request.Style)
	typeface := s.typefaceFor(variant.AssetPath)
	if typeface == nil {
		return nil, core.Error(core.EMISSING, "no usable font asset for family %s", request.Family)
	}
	fd := &FontData{
		typeface:            typeface,
		family:              request.Family,
		size:                request.Size,
		syntheticBold:       (request.Weight >= font.WeightSemiBold && !typeface.Bold()) || request.SyntheticBold,
		syntheticItalic:     (request.Style != xfont.StyleNormal && !typeface.Italic()) || request.SyntheticItalic,
		orientation:         request.Orientation,
		subpixelPositioning: request.SubpixelPositioning,
	}
	s.fontdata[request] = fd
	return fd, nil
}

// typefaceFor resolves an asset path to a typeface, loading and decoding
// the asset on first use. Failures are recorded as permanent negative
// entries: a later request for the same path consults the cache only and
// neither re-fetches nor re-decodes.
//
// Callers must hold the selector's lock.
func (s *Selector) typefaceFor(assetPath string) font.Typeface {
	if asset, seen := s.typefaces[assetPath]; seen {
		if asset == nil {
			return nil
		}
		return asset.typeface
	}
	data, err := s.bundle.Fetch(assetPath)
	if err != nil {
		tracer().Infof("font asset %s missing from bundle: %v", assetPath, err)
		s.typefaces[assetPath] = nil
		return nil
	}
	typeface, err := s.construct(data)
	if err != nil {
		tracer().Errorf("font asset %s does not decode: %v", assetPath, err)
		s.typefaces[assetPath] = nil
		return nil
	}
	s.typefaces[assetPath] = &typefaceAsset{typeface: typeface, data: data}
	return typeface
}
