// Package stage implements the nine decomposition stages the scheduler
// dispatches into, in the fixed priority order spec §4.5 lays out:
// 1-sum splitting, the direct small-matrix (co)graphicness shortcut, R10
// detection, series-parallel reduction, nested-minor sequence
// construction, graphicness/cographicness walking along that sequence,
// and 3-separation enumeration.
//
// Every stage is a pure function from a *decomp.Node to either an
// update-* call on that node (advancing it one step) or "no match,
// try the next stage" — the scheduler owns retry/priority, stages never
// loop back into each other directly.
package stage
