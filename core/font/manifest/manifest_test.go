package manifest

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"

	"github.com/typograf/fontsel/core/font"
)

func TestParseWellFormed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.manifest")
	defer teardown()
	//
	registry := Parse([]byte(`[
	  {"family": "Roboto", "fonts": [
	    {"asset": "fonts/Roboto-Regular.ttf", "weight": 400},
	    {"asset": "fonts/Roboto-Bold.ttf", "weight": 700},
	    {"asset": "fonts/Roboto-Italic.ttf", "style": "italic"}
	  ]},
	  {"family": "Lato", "fonts": [
	    {"asset": "fonts/Lato-Regular.ttf"}
	  ]}
	]`))
	require.Equal(t, 2, registry.Size())
	variants := registry.Variants("Roboto")
	require.Len(t, variants, 3)
	require.Equal(t, "fonts/Roboto-Regular.ttf", variants[0].AssetPath)
	require.Equal(t, font.WeightBold, variants[1].Weight)
	require.Equal(t, xfont.StyleItalic, variants[2].Style)
	// omitted attributes take their defaults
	require.Equal(t, font.WeightNormal, variants[2].Weight)
	lato := registry.Variants("Lato")
	require.Len(t, lato, 1)
	require.Equal(t, font.WeightNormal, lato[0].Weight)
	require.Equal(t, xfont.StyleNormal, lato[0].Style)
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.manifest")
	defer teardown()
	//
	registry := Parse([]byte(`[
	  "not an object",
	  {"fonts": [{"asset": "orphan.ttf"}]},
	  {"family": "NoFonts"},
	  {"family": "Mixed", "fonts": [
	    {"asset": "fonts/Mixed-Regular.ttf"},
	    {"weight": 700},
	    {"asset": 42},
	    "not an object",
	    {"asset": "fonts/Mixed-Bold.ttf", "weight": 700}
	  ]}
	]`))
	require.Equal(t, 1, registry.Size())
	variants := registry.Variants("Mixed")
	require.Len(t, variants, 2, "invalid font entries must not affect valid siblings")
	require.Equal(t, "fonts/Mixed-Regular.ttf", variants[0].AssetPath)
	require.Equal(t, "fonts/Mixed-Bold.ttf", variants[1].AssetPath)
}

func TestParseMistypedOptionalAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.manifest")
	defer teardown()
	//
	registry := Parse([]byte(`[
	  {"family": "Odd", "fonts": [
	    {"asset": "odd.ttf", "weight": "bold", "style": 7}
	  ]}
	]`))
	variants := registry.Variants("Odd")
	require.Len(t, variants, 1)
	require.Equal(t, font.WeightNormal, variants[0].Weight)
	require.Equal(t, xfont.StyleNormal, variants[0].Style)
}

func TestParseDuplicateFamilyAppends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.manifest")
	defer teardown()
	//
	registry := Parse([]byte(`[
	  {"family": "Roboto", "fonts": [{"asset": "fonts/Roboto-Regular.ttf"}]},
	  {"family": "Roboto", "fonts": [{"asset": "fonts/Roboto-Bold.ttf", "weight": 700}]}
	]`))
	require.Equal(t, 1, registry.Size())
	variants := registry.Variants("Roboto")
	require.Len(t, variants, 2, "a family listed twice extends its variant list")
	require.Equal(t, "fonts/Roboto-Regular.ttf", variants[0].AssetPath)
}

func TestParseDegradesToEmptyRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.manifest")
	defer teardown()
	//
	for name, doc := range map[string]string{
		"empty input":    ``,
		"not JSON":       `@@@`,
		"not a list":     `{"family": "Roboto"}`,
		"list of lists":  `[[1, 2, 3]]`,
		"empty manifest": `[]`,
	} {
		registry := Parse([]byte(doc))
		require.NotNil(t, registry, name)
		require.Equal(t, 0, registry.Size(), name)
	}
}
