package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/curvedworld"
)

// GlobalsSize is the size of the CurvedWorldGlobals uniform block.
const GlobalsSize = 32

// EncodeGlobals packs the curved world globals into a uniform block.
// Unset properties encode as zero.
func EncodeGlobals(globals curvedworld.GlobalShaderReader) []byte {
	// struct CurvedWorldGlobals {
	//   packed_inputs_xyz: vec4<f32>; -- 0
	//   use_curved_effect: f32;       -- 16
	// } -> 32 bytes (padded)
	buf := make([]byte, GlobalsSize)

	if packed, ok := globals.GlobalVector(curvedworld.PackedInputsID); ok {
		for i, v := range packed {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
		}
	}
	if flag, ok := globals.GlobalFloat(curvedworld.UseCurvedEffectID); ok {
		binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(flag))
	}

	return buf
}

// GlobalsUploader mirrors the global shader state into a uniform buffer.
type GlobalsUploader struct {
	Device *wgpu.Device
	Buffer *wgpu.Buffer
}

func (u *GlobalsUploader) ensureBuffer() error {
	if u.Buffer != nil {
		return nil
	}
	desc := &wgpu.BufferDescriptor{
		Label: "CurvedWorldGlobalsUB",
		Size:  GlobalsSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	}
	buf, err := u.Device.CreateBuffer(desc)
	if err != nil {
		return fmt.Errorf("create curved world globals buffer: %w", err)
	}
	u.Buffer = buf
	return nil
}

func (u *GlobalsUploader) Upload(globals curvedworld.GlobalShaderReader) error {
	if err := u.ensureBuffer(); err != nil {
		return err
	}
	u.Device.GetQueue().WriteBuffer(u.Buffer, 0, EncodeGlobals(globals))
	return nil
}

func (u *GlobalsUploader) Release() {
	if u.Buffer != nil {
		u.Buffer.Release()
		u.Buffer = nil
	}
}

// GlobalsUploadModule uploads the global shader state every frame, after the
// curved world broadcast. Install it after CurvedWorldModule. A nil Device
// installs nothing.
type GlobalsUploadModule struct {
	Device *wgpu.Device
}

func (m GlobalsUploadModule) Install(app *curvedworld.App, cmd *curvedworld.Commands) {
	if m.Device == nil {
		app.Logger().Warnf("GlobalsUploadModule: no GPU device, global shader state stays CPU-side")
		return
	}
	if _, ok := curvedworld.Resource[curvedworld.ShaderGlobals](app); !ok {
		panic("GlobalsUploadModule requires CurvedWorldModule")
	}

	log := app.Logger()
	uploader := &GlobalsUploader{Device: m.Device}
	cmd.AddResources(uploader)

	app.UseSystem(
		curvedworld.System(func(globals *curvedworld.ShaderGlobals, up *GlobalsUploader) {
			if err := up.Upload(globals); err != nil {
				log.Errorf("%v", err)
			}
		}).
			InStage(curvedworld.PreRender).
			RunAlways(),
	)
	app.UseSystem(
		curvedworld.System(func(up *GlobalsUploader) {
			up.Release()
		}).
			InStage(curvedworld.Finale).
			InState(curvedworld.OnExit(curvedworld.Stopped)),
	)
}
