package curvedworld

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	CurveAmountMin float32 = -0.1
	CurveAmountMax float32 = 0.1
)

// ConfigSurface is the user-facing control panel for a CurvedWorldConfig.
// Unlike the broadcaster it clamps every amount into the supported range.
type ConfigSurface struct {
	config *CurvedWorldConfig
}

func NewConfigSurface(config *CurvedWorldConfig) *ConfigSurface {
	return &ConfigSurface{config: config}
}

func (s *ConfigSurface) SetEnabled(enabled bool) {
	s.config.Enabled = enabled
}

func (s *ConfigSurface) SetCurveAmountX(v float32) {
	s.config.CurveAmountX = clampAmount(v)
}

func (s *ConfigSurface) SetCurveAmountY(v float32) {
	s.config.CurveAmountY = clampAmount(v)
}

func (s *ConfigSurface) SetTwistAmount(v float32) {
	s.config.TwistAmount = clampAmount(v)
}

func (s *ConfigSurface) Config() CurvedWorldConfig {
	return *s.config
}

func clampAmount(v float32) float32 {
	return mgl32.Clamp(v, CurveAmountMin, CurveAmountMax)
}
