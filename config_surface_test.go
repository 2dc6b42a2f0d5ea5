package curvedworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigSurface_ClampsAmounts(t *testing.T) {
	cfg := &CurvedWorldConfig{}
	s := NewConfigSurface(cfg)

	s.SetEnabled(true)
	s.SetCurveAmountX(0.5)
	s.SetCurveAmountY(-0.5)
	s.SetTwistAmount(0.05)

	assert.Equal(t, CurvedWorldConfig{
		Enabled:      true,
		CurveAmountX: CurveAmountMax,
		CurveAmountY: CurveAmountMin,
		TwistAmount:  0.05,
	}, *cfg)
	assert.Equal(t, *cfg, s.Config())
}
