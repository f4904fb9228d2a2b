package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/duskforge/ecsframe/internal/collab"
	"github.com/duskforge/ecsframe/internal/core/components"
	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// RenderPlugin draws every entity with a Position and a visible Sprite onto
// the current frame's screen, in ZOrder then entity-id order for a stable
// draw sequence. Requires collab.RenderPlugin and collab.AssetPlugin.
func RenderPlugin() ecs.Plugin {
	return ecs.Plugin{
		Title:       "systems.Render",
		Description: "draws Position+Sprite entities onto the active frame",
		Deps:        []string{"collab.Render", "collab.Assets"},
		Plug: func(w *ecs.World) {
			w.AddSystem(ecs.StageRender, ecs.System4(
				"systems.Render.drawSprites",
				func(
					q *ecs.Query3[ecs.Ref[components.Position], ecs.Ref[components.Sprite], ecs.EntityClaim],
					target ecs.Res[collab.Renderer],
					textures ecs.Res[*collab.TextureLibrary],
					graph ecs.ResMut[collab.RenderGraph],
				) {
					screen := target.Get().Screen
					if screen == nil {
						return
					}
					graph.Get().DrawCalls += drawSprites(screen, textures.Get(), q)
				},
			))
		},
	}
}

type drawRow struct {
	pos    *components.Position
	sprite *components.Sprite
	id     uint64
}

// drawSprites collects every visible row, orders it by ZOrder then entity id
// for a stable draw sequence, draws in that order, and returns the number of
// rows drawn.
func drawSprites(
	screen *ebiten.Image,
	lib *collab.TextureLibrary,
	q *ecs.Query3[ecs.Ref[components.Position], ecs.Ref[components.Sprite], ecs.EntityClaim],
) int {
	var rows []drawRow
	for {
		pos, sprite, ent, ok := q.Next()
		if !ok {
			break
		}
		s := sprite.Get()
		if !s.Visible {
			continue
		}
		rows = append(rows, drawRow{pos: pos.Get(), sprite: s, id: ent.Entity().ID()})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].sprite.ZOrder != rows[j].sprite.ZOrder {
			return rows[i].sprite.ZOrder < rows[j].sprite.ZOrder
		}
		return rows[i].id < rows[j].id
	})
	for _, row := range rows {
		drawSprite(screen, lib, row.pos, row.sprite)
	}
	return len(rows)
}

func drawSprite(screen *ebiten.Image, lib *collab.TextureLibrary, pos *components.Position, sprite *components.Sprite) {
	img, _, err := lib.Load(sprite.TextureName)
	if err != nil {
		ebitenutil.DebugPrintAt(screen, "missing texture: "+sprite.TextureName, int(pos.X), int(pos.Y))
		return
	}
	opts := &ebiten.DrawImageOptions{}
	if sprite.FlipX {
		opts.GeoM.Scale(-1, 1)
	}
	if sprite.FlipY {
		opts.GeoM.Scale(1, -1)
	}
	opts.GeoM.Translate(pos.X, pos.Y)
	opts.ColorScale.ScaleWithColor(colorOf(sprite.Tint))
	screen.DrawImage(img, opts)
}

func colorOf(c components.Color) colorRGBA {
	return colorRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// colorRGBA satisfies ebiten's ColorScale.ScaleWithColor color.Color
// argument without pulling image/color into components, keeping that
// package free of rendering-library types.
type colorRGBA struct{ R, G, B, A uint8 }

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
