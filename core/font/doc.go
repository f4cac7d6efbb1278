/*
Package font holds the data model for typeface and font handling.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "family" is a logical font name, e.g. "Roboto", grouping several
style variants.

▪︎ A "variant" is one concrete font asset within a family, tagged with
weight and slant.

▪︎ A "scalable font" is a decoded font binary, i.e. a variant of a family
loaded into memory. An example is "Roboto regular".

▪︎ A "typecase" is a scaled font, i.e. a font prepared at a certain size.
The name is reminiscend on the wooden boxes of typesetters in the era of
metal type. An example is "Roboto regular 11pt".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.font'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.font")
}
