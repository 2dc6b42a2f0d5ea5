package curvedworld

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// PropertyID is a stable integer handle for a named shader property.
type PropertyID int32

var propertyRegistry = struct {
	sync.Mutex
	ids   map[string]PropertyID
	names []string
}{ids: make(map[string]PropertyID)}

// PropertyToID interns name and returns its id. The same name always maps to
// the same id for the lifetime of the process.
func PropertyToID(name string) PropertyID {
	propertyRegistry.Lock()
	defer propertyRegistry.Unlock()

	if id, ok := propertyRegistry.ids[name]; ok {
		return id
	}
	id := PropertyID(len(propertyRegistry.names))
	propertyRegistry.ids[name] = id
	propertyRegistry.names = append(propertyRegistry.names, name)
	return id
}

// Name returns the property name the id was interned from.
func (id PropertyID) Name() string {
	propertyRegistry.Lock()
	defer propertyRegistry.Unlock()

	if id < 0 || int(id) >= len(propertyRegistry.names) {
		return ""
	}
	return propertyRegistry.names[id]
}

// GlobalShaderState is the process-wide store every shader reads its global
// uniforms from. Writes are last-write-wins.
type GlobalShaderState interface {
	SetGlobalFloat(id PropertyID, value float32)
	SetGlobalVector(id PropertyID, value mgl32.Vec4)
}

// GlobalShaderReader is the read side of a GlobalShaderState.
type GlobalShaderReader interface {
	GlobalFloat(id PropertyID) (float32, bool)
	GlobalVector(id PropertyID) (mgl32.Vec4, bool)
}

// ShaderGlobals is an in-memory GlobalShaderState. It is installed as an app
// resource and mirrored to the GPU by render/gpu.
type ShaderGlobals struct {
	floats  map[PropertyID]float32
	vectors map[PropertyID]mgl32.Vec4
}

func NewShaderGlobals() *ShaderGlobals {
	return &ShaderGlobals{
		floats:  make(map[PropertyID]float32),
		vectors: make(map[PropertyID]mgl32.Vec4),
	}
}

func (g *ShaderGlobals) SetGlobalFloat(id PropertyID, value float32) {
	g.floats[id] = value
}

func (g *ShaderGlobals) SetGlobalVector(id PropertyID, value mgl32.Vec4) {
	g.vectors[id] = value
}

func (g *ShaderGlobals) GlobalFloat(id PropertyID) (float32, bool) {
	v, ok := g.floats[id]
	return v, ok
}

func (g *ShaderGlobals) GlobalVector(id PropertyID) (mgl32.Vec4, bool) {
	v, ok := g.vectors[id]
	return v, ok
}
