package selector

import (
	xfont "golang.org/x/image/font"

	"github.com/typograf/fontsel/core/font"
)

// pickVariant selects the variant of a family best matching a requested
// weight and style. variants must not be empty. A family with a single
// asset always resolves to it, regardless of style mismatch.
//
// Selection is a two-key lexicographic minimization: a variant matching
// the requested style beats any variant that does not, independent of
// weight; among variants tied on style match, the smaller weight
// distance wins. The scan is left to right and keeps the first strictly
// better candidate, so exact ties resolve to the variant listed first in
// the manifest.
func pickVariant(variants []font.Variant, weight font.Weight, style xfont.Style) font.Variant {
	if len(variants) == 1 {
		return variants[0]
	}
	best := variants[0]
	for _, v := range variants[1:] {
		if betterMatch(v, best, weight, style) {
			best = v
		}
	}
	return best
}

// betterMatch reports whether variant a matches the requested weight and
// style strictly better than variant b.
func betterMatch(a, b font.Variant, weight font.Weight, style xfont.Style) bool {
	if a.Style != b.Style {
		if a.Style == style {
			return true
		}
		if b.Style == style {
			return false
		}
	}
	return a.Weight.Dist(weight) < b.Weight.Dist(weight)
}
