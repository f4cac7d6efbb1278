package manifest

import (
	"encoding/json"

	xfont "golang.org/x/image/font"

	"github.com/typograf/fontsel/core/font"
)

// AssetPath is the well-known bundle path of the font manifest.
const AssetPath = "FontManifest.json"

// Parse decodes a font manifest into a family registry.
//
// The top level of the document is a list of family entries; each family
// entry carries a "family" string and a "fonts" list; each font entry
// carries a required "asset" string plus optional "weight" (integer,
// default 400) and "style" ("italic" selects italic, anything else
// selects normal).
//
// Parse never fails: malformed family or font entries are dropped
// without affecting their well-formed siblings, and a document whose top
// level has the wrong shape yields an empty registry. A family listed
// twice extends the first occurrence's variant list.
func Parse(data []byte) *font.Registry {
	registry := font.NewRegistry()
	var familyList []interface{}
	if err := json.Unmarshal(data, &familyList); err != nil {
		tracer().Infof("font manifest is not a list of families: %v", err)
		return registry
	}
	for _, entry := range familyList {
		familyDict, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		familyName, ok := familyDict["family"].(string)
		if !ok {
			continue
		}
		fontList, ok := familyDict["fonts"].([]interface{})
		if !ok {
			continue
		}
		for _, fontEntry := range fontList {
			if v, ok := parseVariant(fontEntry); ok {
				registry.AddVariant(familyName, v)
			}
		}
	}
	tracer().Debugf("font manifest declares %d families", registry.Size())
	return registry
}

// parseVariant decodes a single font entry. Optional attributes of the
// wrong type keep their defaults, a missing or mistyped asset path
// invalidates the entry.
func parseVariant(fontEntry interface{}) (font.Variant, bool) {
	fontDict, ok := fontEntry.(map[string]interface{})
	if !ok {
		return font.Variant{}, false
	}
	assetPath, ok := fontDict["asset"].(string)
	if !ok {
		return font.Variant{}, false
	}
	v := font.Variant{
		AssetPath: assetPath,
		Weight:    font.WeightNormal,
		Style:     xfont.StyleNormal,
	}
	if weight, ok := fontDict["weight"].(float64); ok {
		v.Weight = font.Weight(weight)
	}
	if style, ok := fontDict["style"].(string); ok && style == "italic" {
		v.Style = xfont.StyleItalic
	}
	return v, true
}
