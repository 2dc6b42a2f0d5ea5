package curvedworld

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_LevelsAndPrefix(t *testing.T) {
	var out, errOut bytes.Buffer
	l := newLogger("cw", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String())

	l.SetDebug(true)
	l.Debugf("shown %d", 2)
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("boom")

	assert.Contains(t, out.String(), "[cw] DEBUG: shown 2")
	assert.Contains(t, out.String(), "[cw] INFO: info")
	assert.Contains(t, errOut.String(), "[cw] WARN: warn")
	assert.Contains(t, errOut.String(), "[cw] ERROR: boom")
}

func TestApp_LoggerNeverNil(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())

	app := NewAppBuilder().Build()
	assert.False(t, app.Logger().DebugEnabled())

	app = NewAppBuilder().UseModule(LoggingModule{Prefix: "cw", Debug: true}).Build()
	assert.True(t, app.Logger().DebugEnabled())
}

func TestPipelineModule_SingleInstall(t *testing.T) {
	app := NewAppBuilder().UseModule(TimeModule{}, RenderPipelineModule{}).Build()

	assert.NotPanics(t, func() { app.UseModules(RenderPipelineModule{}) })
	assert.PanicsWithValue(t, "Multiple render pipelines installed: serial and deferred", func() {
		app.UseModules(RenderPipelineModule{Name: "deferred"})
	})
}
