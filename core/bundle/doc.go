/*
Package bundle reads raw asset bytes packaged with an application.

A bundle is the byte source behind font selection: the font manifest and
every font binary it names are fetched through a Bundle. Implementations
exist for plain directories, io/fs file systems (including embed.FS) and
zip archives.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bundle

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.bundle'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.bundle")
}
