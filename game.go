package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tweakdock/config"
	"tweakdock/dockui"
)

var backgroundColor = color.White

// Game wires the demo scene and the tweak panel into Ebiten.
type Game struct {
	ctx     context.Context
	host    *dockui.Host
	scene   *scene
	reloads chan config.Config
}

func newGame(ctx context.Context, cfg config.Config) (*Game, error) {
	opts, err := cfg.PanelOptions()
	if err != nil {
		return nil, err
	}
	host, err := dockui.NewHost(opts, cfg.SafeArea(), cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("create panel host: %w", err)
	}
	host.SetTPS(cfg.TPS)
	host.Panel.SetObserver(logTransition)

	g := &Game{
		ctx:     ctx,
		host:    host,
		reloads: make(chan config.Config, 1),
	}
	g.scene = newScene(host.Panel, logValueChange)
	return g, nil
}

// applyConfig installs a reloaded config without disturbing the panel
// state or parameter values.
func (g *Game) applyConfig(cfg config.Config) {
	opts, err := cfg.PanelOptions()
	if err != nil {
		logError("apply config: %v", err)
		return
	}
	g.host.Panel.Configure(opts)
	g.host.SetInsets(cfg.SafeArea())
	g.host.SetScale(cfg.Scale)
	g.host.SetTPS(cfg.TPS)
	setTPS(cfg.TPS)
	logDebug("config reloaded")
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	select {
	case cfg := <-g.reloads:
		g.applyConfig(cfg)
	default:
	}

	used := g.host.Update()

	screen, _ := g.host.ScreenBounds()
	area := sceneArea(screen, g.host.SafeAreaInsets())
	g.scene.update(g.host.FrameDelta(), area, dockui.PointerPressed() && !used)

	if inpututil.IsKeyJustPressed(ebiten.KeyC) &&
		(ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) {
		copyValues(g.host.Panel.Registry().Rows())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scene.draw(screen)
	g.host.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.host.Layout(outsideWidth, outsideHeight)
}

func setTPS(tps int) {
	if tps > 0 {
		ebiten.SetTPS(tps)
		return
	}
	ebiten.SetTPS(ebiten.SyncWithFPS)
}

func runGame(g *Game, cfg config.Config) error {
	ebiten.SetWindowTitle("tweakdock")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(cfg.WindowWidth)*scale), int(float64(cfg.WindowHeight)*scale))
	setTPS(cfg.TPS)

	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(g, op); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
