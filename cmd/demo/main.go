// Command demo drives a small ecsframe World through an ebiten game loop,
// wiring every collaborator plugin together: window, time, rendering,
// assets, and the example gameplay systems.
package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/duskforge/ecsframe/internal/collab"
	"github.com/duskforge/ecsframe/internal/core/components"
	"github.com/duskforge/ecsframe/internal/core/ecs"
	"github.com/duskforge/ecsframe/internal/core/systems"
)

// game adapts an *ecs.World to ebiten's Update/Draw/Layout contract.
type game struct {
	world    *ecs.World
	headless bool
	width    int
	height   int
}

func (g *game) Update() error {
	g.world.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	collab.SetScreen(g.world, screen)
	g.world.Render()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML world config")
	headless := flag.Bool("headless", false, "run Startup/Update only, without opening a window")
	flag.Parse()

	log := logrus.New()

	cfg := &ecs.WorldConfig{}
	cfg.Window.Title, cfg.Window.Width, cfg.Window.Height = "ecsframe demo", 960, 540
	if *configPath != "" {
		loaded, err := ecs.LoadWorldConfig(*configPath)
		if err != nil {
			log.WithError(err).Fatal("loading world config")
		}
		cfg = loaded
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	w := ecs.New(log)
	w.AddPlugin(collab.WindowPlugin(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height))
	w.AddPlugin(collab.TimePlugin())
	w.AddPlugin(collab.RenderPlugin())
	w.AddPlugin(collab.AssetPlugin(cfg.Assets.TextureRoot, cfg.Assets.AudioRoot))
	w.AddPlugin(systems.MovementPlugin())
	w.AddPlugin(systems.PhysicsPlugin(480))
	w.AddPlugin(systems.AIPlugin())
	w.AddPlugin(systems.AudioPlugin())
	w.AddPlugin(systems.RenderPlugin())

	spawnDemoEntities(w)

	if err := w.Startup(); err != nil {
		log.WithError(err).Fatal("startup failed")
	}

	if *headless {
		for i := 0; i < 60; i++ {
			w.Update()
		}
		w.Shutdown()
		return
	}

	g := &game{world: w, headless: *headless, width: cfg.Window.Width, height: cfg.Window.Height}
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("ebiten run loop exited with error")
	}
	w.Shutdown()
}

func spawnDemoEntities(w *ecs.World) {
	player := w.Spawn()
	ecs.Set(w, player, components.Position{Vec2: components.Vec2{X: 100, Y: 100}})
	ecs.Set(w, player, components.Velocity{})
	ecs.Set(w, player, components.Sprite{TextureName: "player.png", Visible: true, Tint: components.Color{R: 255, G: 255, B: 255, A: 255}})
	ecs.Set(w, player, components.Health{Current: 100, Max: 100})

	guard := w.Spawn()
	ecs.Set(w, guard, components.Position{Vec2: components.Vec2{X: 400, Y: 300}})
	ecs.Set(w, guard, components.Velocity{})
	ecs.Set(w, guard, components.Sprite{TextureName: "guard.png", Visible: true, Tint: components.Color{R: 255, G: 255, B: 255, A: 255}})
	ecs.Set(w, guard, components.AI{
		Speed:        60,
		PatrolPoints: []components.Vec2{{X: 400, Y: 300}, {X: 600, Y: 300}, {X: 600, Y: 450}},
	})
}
