// Package params implements the decomposition-parameters flat record and
// run-statistics record of spec §6, plus their JSON encoding (read by the
// CLI's --params-file flag, written by `seymour stats`).
//
// Grounded on the teacher's matrix/options.go functional-options pattern:
// Option functions applied by New on top of defaults() to build a Params.
// Departs from the teacher's "panic on invalid" convention because this
// record is filled from a JSON file, untrusted input — so New does not
// validate, and Params.Validate returns a cmrerrors.InvalidParameters
// error instead of panicking.
package params

import "github.com/discopt/seymour-go/cmrerrors"

// strategyBit is one flag of the decomposeStrategy bitset named in spec
// §6. Exactly one DistributedX bit and exactly one ConcentratedX bit must
// be set; Validate enforces this.
type strategyBit uint8

const (
	// DistributedPivot requests a distributed (1+1) 3-separation be
	// resolved by a pivot rather than a delta-sum.
	DistributedPivot strategyBit = 1 << iota
	// DistributedDeltaSum requests a distributed 3-separation be resolved
	// via delta-sum rather than a pivot.
	DistributedDeltaSum
	// ConcentratedPivot requests a concentrated (2+0) 3-separation be
	// resolved by a pivot rather than a 3-sum.
	ConcentratedPivot
	// ConcentratedThreeSum requests a concentrated 3-separation be resolved
	// via 3-sum rather than a pivot.
	ConcentratedThreeSum
)

const (
	distributedGroup  = DistributedPivot | DistributedDeltaSum
	concentratedGroup = ConcentratedPivot | ConcentratedThreeSum
)

// Params is the flat decomposition-parameters record of spec §6.
type Params struct {
	StopWhenIrregular                  bool `json:"stopWhenIrregular"`
	StopWhenNongraphic                 bool `json:"stopWhenNongraphic"`
	StopWhenNoncographic               bool `json:"stopWhenNoncographic"`
	StopWhenNeitherGraphicNorCoGraphic bool `json:"stopWhenNeitherGraphicNorCoGraphic"`

	SeriesParallel    bool `json:"seriesParallel"`    // allow series-parallel reductions
	PlanarityCheck    bool `json:"planarityCheck"`    // still check cographicness when already known graphic
	DirectGraphicness bool `json:"directGraphicness"` // try (co)graphicness before series-parallel reduction

	PreferGraphicness   bool `json:"preferGraphicness"` // when both graphic and cographic succeed, keep the graphic leaf
	ConstructLeafGraphs bool `json:"constructLeafGraphs"`
	ConstructAllGraphs  bool `json:"constructAllGraphs"`

	DecomposeStrategy strategyBit `json:"decomposeStrategy"`
}

// Option mutates a Params value being built by New.
type Option func(*Params)

// Defaults mirror CMR's own documented defaults: series-parallel reduction
// and the cheap direct-graphicness shortcut on, every other flag off,
// distributed 3-sums resolved by pivot and concentrated ones by 3-sum.
func defaults() Params {
	return Params{
		SeriesParallel:    true,
		DirectGraphicness: true,
		DecomposeStrategy: DistributedPivot | ConcentratedThreeSum,
	}
}

// New builds a Params from defaults() plus opts, in order.
func New(opts ...Option) Params {
	p := defaults()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func WithStopWhenIrregular(v bool) Option     { return func(p *Params) { p.StopWhenIrregular = v } }
func WithStopWhenNongraphic(v bool) Option    { return func(p *Params) { p.StopWhenNongraphic = v } }
func WithStopWhenNoncographic(v bool) Option  { return func(p *Params) { p.StopWhenNoncographic = v } }
func WithStopWhenNeitherGraphicNorCoGraphic(v bool) Option {
	return func(p *Params) { p.StopWhenNeitherGraphicNorCoGraphic = v }
}
func WithSeriesParallel(v bool) Option    { return func(p *Params) { p.SeriesParallel = v } }
func WithPlanarityCheck(v bool) Option    { return func(p *Params) { p.PlanarityCheck = v } }
func WithDirectGraphicness(v bool) Option { return func(p *Params) { p.DirectGraphicness = v } }
func WithPreferGraphicness(v bool) Option { return func(p *Params) { p.PreferGraphicness = v } }
func WithConstructLeafGraphs(v bool) Option {
	return func(p *Params) { p.ConstructLeafGraphs = v }
}
func WithConstructAllGraphs(v bool) Option { return func(p *Params) { p.ConstructAllGraphs = v } }

// WithDecomposeStrategy sets the raw bitset directly; callers composing
// Params from CLI flags typically set one bit from each group.
func WithDecomposeStrategy(bits strategyBit) Option {
	return func(p *Params) { p.DecomposeStrategy = bits }
}

// Validate enforces spec §6's decomposeStrategy contract: exactly one bit
// from the distributed group and exactly one from the concentrated group.
func (p Params) Validate() error {
	if bits := popcount(uint8(p.DecomposeStrategy & distributedGroup)); bits != 1 {
		return cmrerrors.New(cmrerrors.InvalidParameters, cmrerrors.ErrInvalidParameters)
	}
	if bits := popcount(uint8(p.DecomposeStrategy & concentratedGroup)); bits != 1 {
		return cmrerrors.New(cmrerrors.InvalidParameters, cmrerrors.ErrInvalidParameters)
	}
	return nil
}

func popcount(b uint8) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}
