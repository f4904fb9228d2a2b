package collab

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskforge/ecsframe/internal/core/ecs"
)

func TestRenderPlugin_InstallsResourcesAndResetsGraph(t *testing.T) {
	w := ecs.New(nil)
	w.AddPlugin(RenderPlugin())

	ecs.SetResource(w, RenderGraph{DrawCalls: 5})
	w.Render()

	r, err := ecs.GetResource[RenderGraph](w)
	require.NoError(t, err)
	assert.Equal(t, 0, r.DrawCalls)
}

func TestSetScreen_UpdatesRendererResource(t *testing.T) {
	w := ecs.New(nil)
	w.AddPlugin(RenderPlugin())

	img := ebiten.NewImage(10, 10)
	SetScreen(w, img)

	r, err := ecs.GetResource[Renderer](w)
	require.NoError(t, err)
	assert.Same(t, img, r.Screen)
}
