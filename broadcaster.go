package curvedworld

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Shader property names read by curved world materials.
const (
	UseCurvedEffectProperty = "_Use_Curved_Effect"
	PackedInputsProperty    = "_Packed_Inputs_XYZ"
)

var (
	UseCurvedEffectID = PropertyToID(UseCurvedEffectProperty)
	PackedInputsID    = PropertyToID(PackedInputsProperty)
)

// CurvedWorldConfig holds the effect settings. The curve and twist amounts are
// expected in [CurveAmountMin, CurveAmountMax]; only ConfigSurface enforces that.
type CurvedWorldConfig struct {
	Enabled      bool
	CurveAmountX float32
	CurveAmountY float32
	TwistAmount  float32
}

// Packed returns the config as the (x, y, twist, 0) vector shaders read.
func (c CurvedWorldConfig) Packed() mgl32.Vec4 {
	return mgl32.Vec4{c.CurveAmountX, c.CurveAmountY, c.TwistAmount, 0}
}

// ParameterBroadcaster publishes a CurvedWorldConfig to global shader state.
type ParameterBroadcaster struct {
	globals GlobalShaderState
}

func NewParameterBroadcaster(globals GlobalShaderState) *ParameterBroadcaster {
	return &ParameterBroadcaster{globals: globals}
}

// Tick writes the enable flag and the packed parameters. It is called every
// frame whether or not the config changed.
func (b *ParameterBroadcaster) Tick(config CurvedWorldConfig) {
	// A float toggle, not a keyword, so no new shader variants get compiled.
	var flag float32
	if config.Enabled {
		flag = 1
	}
	b.globals.SetGlobalFloat(UseCurvedEffectID, flag)
	b.globals.SetGlobalVector(PackedInputsID, config.Packed())
}
