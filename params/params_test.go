package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discopt/seymour-go/params"
)

func TestNewDefaultsValidate(t *testing.T) {
	p := params.New()
	require.NoError(t, p.Validate())
}

func TestValidateRejectsMissingDistributedChoice(t *testing.T) {
	p := params.New(params.WithDecomposeStrategy(params.ConcentratedThreeSum))
	require.Error(t, p.Validate())
}

func TestValidateRejectsBothDistributedChoices(t *testing.T) {
	p := params.New(params.WithDecomposeStrategy(params.DistributedPivot | params.DistributedDeltaSum | params.ConcentratedPivot))
	require.Error(t, p.Validate())
}

func TestValidateAcceptsOneFromEachGroup(t *testing.T) {
	p := params.New(params.WithDecomposeStrategy(params.DistributedDeltaSum | params.ConcentratedPivot))
	require.NoError(t, p.Validate())
}

func TestOptionsOverrideDefaults(t *testing.T) {
	p := params.New(params.WithStopWhenIrregular(true), params.WithSeriesParallel(false))
	require.True(t, p.StopWhenIrregular)
	require.False(t, p.SeriesParallel)
}
