package approx

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualWithinTolerance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "itensor.approx")
	defer teardown()
	//
	assert.True(t, Equal(0.1, 0.1))
	assert.True(t, Equal(0.1, 0.1+DefaultEpsilon/2))
	assert.False(t, Equal(0.1, 0.2))
	assert.True(t, Real(1).Equal(Real(1+1e-13)))
	assert.Equal(t, 0, Compare(1.0, 1.0+1e-13))
	assert.Equal(t, -1, Compare(1.0, 2.0))
	assert.Equal(t, 1, Compare(2.0, 1.0))
	assert.True(t, Real(0.1).Less(0.2))
	assert.False(t, Real(0.1).Less(0.1))
}

func TestSetEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "itensor.approx")
	defer teardown()
	//
	prev := SetEpsilon(0.5)
	defer SetEpsilon(prev)
	assert.Equal(t, DefaultEpsilon, prev)
	assert.True(t, Equal(1.0, 1.4))
	assert.False(t, Equal(1.0, 1.6))
	//
	// invalid values leave the tolerance unchanged
	assert.Equal(t, 0.5, SetEpsilon(-1))
	assert.Equal(t, 0.5, SetEpsilon(0))
	assert.Equal(t, 0.5, Epsilon())
}

func TestConfigure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "itensor.approx")
	defer teardown()
	//
	prev := Epsilon()
	defer SetEpsilon(prev)
	require.NoError(t, Configure(testconfig.Conf{}))
	assert.Equal(t, prev, Epsilon(), "missing key must not change epsilon")
	//
	require.NoError(t, Configure(testconfig.Conf{ConfigKey: "1e-6"}))
	assert.Equal(t, 1e-6, Epsilon())
	//
	assert.Error(t, Configure(testconfig.Conf{ConfigKey: "tiny"}))
	assert.Error(t, Configure(testconfig.Conf{ConfigKey: "-3"}))
	assert.Equal(t, 1e-6, Epsilon())
}

func TestNaNAndInfinities(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	assert.True(t, Equal(nan, nan))
	assert.False(t, Equal(nan, 1))
	assert.Equal(t, 0, Compare(nan, nan))
	assert.Equal(t, -1, Compare(nan, 1))
	assert.Equal(t, 1, Compare(1, nan))
	assert.Equal(t, -1, Compare(nan, -inf), "NaN sorts before everything")
	assert.True(t, Equal(inf, inf))
	assert.True(t, Equal(-inf, -inf))
	assert.Equal(t, -1, Compare(-inf, inf))
	assert.Equal(t, 1, Compare(inf, 1e300))
	assert.True(t, Real(nan).Equal(Real(nan)))
	assert.True(t, Real(nan).Less(Real(-inf)))
}
