package font

import (
	"path"
	"strings"

	xfont "golang.org/x/image/font"
)

// GuessStyleAndWeight trys to guess a font's style and weight from a
// name. The name may be a subfamily name from the font's name table
// ("Bold Italic") or a font file name ("fonts/Roboto-BoldItalic.ttf").
func GuessStyleAndWeight(fontname string) (xfont.Style, Weight) {
	fontname = path.Base(fontname)
	ext := path.Ext(fontname)
	fontname = strings.ToLower(fontname[:len(fontname)-len(ext)])
	style, weight := xfont.StyleNormal, WeightNormal
	if strings.Contains(fontname, "italic") {
		style = xfont.StyleItalic
	} else if strings.Contains(fontname, "obliq") {
		style = xfont.StyleOblique
	}
	switch {
	case strings.Contains(fontname, "thin"):
		weight = WeightThin
	case strings.Contains(fontname, "xlight"), strings.Contains(fontname, "extralight"):
		weight = WeightExtraLight
	case strings.Contains(fontname, "light"):
		weight = WeightLight
	case strings.Contains(fontname, "medium"):
		weight = WeightMedium
	case strings.Contains(fontname, "semibold"), strings.Contains(fontname, "demibold"):
		weight = WeightSemiBold
	case strings.Contains(fontname, "xbold"), strings.Contains(fontname, "extrabold"):
		weight = WeightExtraBold
	case strings.Contains(fontname, "black"), strings.Contains(fontname, "heavy"):
		weight = WeightBlack
	case strings.Contains(fontname, "bold"), strings.HasSuffix(fontname, "-b"):
		weight = WeightBold
	}
	return style, weight
}
