/*
Package manifest parses declarative font manifests into a family registry.

A font manifest maps logical family names to the font assets packaged
with an application:

	[
	  {
	    "family": "Roboto",
	    "fonts": [
	      { "asset": "fonts/Roboto-Regular.ttf", "weight": 400 },
	      { "asset": "fonts/Roboto-Bold.ttf", "weight": 700 },
	      { "asset": "fonts/Roboto-Italic.ttf", "style": "italic" }
	    ]
	  }
	]

Parsing is lenient: entries that do not match this shape are skipped, a
malformed manifest degrades to a partial or empty registry and is never
an error.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package manifest

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.manifest'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.manifest")
}
