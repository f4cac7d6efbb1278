/*
Package selector resolves abstract font requests to renderable fonts.

A Selector owns a family registry parsed from the bundle's font manifest
and two process-lifetime caches: a typeface cache keyed by asset path,
so no font binary is fetched or decoded twice, and a font-data cache
keyed by the full style request, so no renderable font object is derived
twice. Every failure mode degrades to a not-found result; the calling
layout pipeline decides on fallback handling.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package selector

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.selector'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.selector")
}
