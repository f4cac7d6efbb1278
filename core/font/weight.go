package font

import (
	xfont "golang.org/x/image/font"
)

// Weight is a numeric boldness on the CSS 9-point scale: 100 is thin,
// 400 is normal, 700 is bold, 900 is black.
type Weight int

// Weight values on the fixed 9-point scale.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// WeightFromFont converts a golang.org/x/image font weight (-3…+5) to
// the CSS scale.
func WeightFromFont(w xfont.Weight) Weight {
	return clampWeight(Weight((int(w) + 4) * 100))
}

func clampWeight(w Weight) Weight {
	if w < WeightThin {
		return WeightThin
	}
	if w > WeightBlack {
		return WeightBlack
	}
	return w
}

// Dist returns the absolute distance between two weights.
func (w Weight) Dist(other Weight) int {
	d := int(w) - int(other)
	if d < 0 {
		return -d
	}
	return d
}
