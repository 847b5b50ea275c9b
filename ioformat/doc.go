// Package ioformat implements the plain-text and JSON wire formats named in
// spec §6: the sparse and dense matrix text formats, the submatrix selector
// text format, and a JSON codec for decomposition parameters and run
// statistics (used by the CLI's --params-file flag and `seymour stats`
// subcommand).
//
// Grounded on the teacher's converters package: one small adapter per
// external format, reading into and writing out of the engine's own types
// rather than owning any state itself. Here the "external format" is a
// text/JSON wire format instead of another graph library, but the shape of
// the adapter — a pure Read*/Write* function pair per format — is the same.
package ioformat
