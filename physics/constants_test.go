package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeed(t *testing.T) {
	c := Default

	assert.Equal(t, 0.0, c.Speed(0))
	assert.InDelta(t, 873047779.7504978, c.Speed(0.39866500922723375), 1e-4)

	// Ultra-relativistic limit.
	assert.InDelta(t, 1.0, c.Speed(1e12)/SpeedOfLight, 1e-12)

	// Non-relativistic limit: v = c*sqrt(2E/m).
	e := 1e-5
	assert.InDelta(t, 1.0,
		c.Speed(e)/(SpeedOfLight*math.Sqrt(2*e/NeutronRestMassEnergy)), 1e-6)

	// Speed scales with the configured c.
	fast := c
	fast.SpeedOfLight *= 2
	assert.InDelta(t, 2*c.Speed(1), fast.Speed(1), 1e-6)
}

func TestSpeedMonotonic(t *testing.T) {
	c := Default
	prev := 0.0
	for e := 1e-6; e < 1e4; e *= 1.5 {
		v := c.Speed(e)
		if v <= prev {
			t.Errorf("Speed(%g) = %g is not above the previous %g", e, v, prev)
		}
		prev = v
	}
}
