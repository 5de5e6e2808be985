package host

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/ggueyraud/Asteroids"
)

type GameProps struct {
	Width, Height int
	Title         string
	Manager       *asteroids.StateManager
	Audio         *AudioManager
	UI            *UI
	Log           *zap.Logger
}

// Game adapts a StateManager to ebiten's loop.
type Game struct {
	width, height int
	title         string
	manager       *asteroids.StateManager
	audio         *AudioManager
	ui            *UI
	log           *zap.Logger

	lastUpdate time.Time
	frame      int64
	err        error
}

func NewGame(props *GameProps) *Game {
	log := props.Log
	if log == nil {
		log = zap.NewNop()
	}
	ui := props.UI
	if ui == nil {
		ui = NewUI()
	}

	return &Game{
		width:   props.Width,
		height:  props.Height,
		title:   props.Title,
		manager: props.Manager,
		audio:   props.Audio,
		ui:      ui,
		log:     log.Named("host"),
	}
}

func (g *Game) Update() (err error) {
	if g.err != nil {
		return g.err
	}
	defer asteroids.CatchAssetError(&err)

	now := time.Now()
	var deltaTime float64
	if !g.lastUpdate.IsZero() {
		deltaTime = now.Sub(g.lastUpdate).Seconds()
	} else {
		deltaTime = 1.0 / 60.0
	}
	g.lastUpdate = now
	g.frame++

	g.ui.begin()
	running := g.manager.Update(asteroids.LoopData{
		Time:  now,
		Frame: g.frame,
		Delta: deltaTime,
	})

	if g.audio != nil {
		g.audio.Update()
	}

	if !running {
		g.log.Info("quit requested", zap.Int64("frame", g.frame))
		return ebiten.Termination
	}
	return nil
}

// Draw keeps an asset failure for the next Update to return, since ebiten
// gives Draw no error result.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	defer asteroids.CatchAssetError(&g.err)

	screen.Fill(color.Black)
	g.manager.Draw(NewRenderer(screen))
	g.ui.draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// Run blocks until the game quits. A normal quit returns nil.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.title)

	err := ebiten.RunGame(g)
	if g.audio != nil {
		g.audio.Cleanup()
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
