// Package window runs the viewer in a desktop window using Ebitengine.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/olivierh59500/gravity-sandbox/internal/config"
	"github.com/olivierh59500/gravity-sandbox/internal/input"
	"github.com/olivierh59500/gravity-sandbox/internal/render"
	"github.com/olivierh59500/gravity-sandbox/internal/sim"
)

// TPS is the fixed update rate; each update advances one frame
const TPS = 60

// Game adapts a sim.Session to ebiten.Game.
// Update handles input and records the frame, Draw replays it.
type Game struct {
	session  *sim.Session
	frame    *render.DisplayList
	settings <-chan config.Settings
	log      zerolog.Logger

	Width, Height int

	poller   input.Poller
	keyTicks map[input.Key]int
}

// NewGame creates a game for session. settings may be nil.
func NewGame(session *sim.Session, w, h int, settings <-chan config.Settings, log zerolog.Logger) *Game {
	return &Game{
		session:  session,
		frame:    render.NewDisplayList(w, h),
		settings: settings,
		log:      log,
		Width:    w,
		Height:   h,
		keyTicks: make(map[input.Key]int),
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	select {
	case s := <-g.settings:
		g.session.Apply(s)
	default:
	}

	for _, ev := range g.poller.Next(g.snapshot()) {
		g.session.Handle(ev)
	}

	g.frame.SetSize(g.Width, g.Height)
	g.session.Tick(g.frame)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Replay(&surface{img: screen})
}

// Layout follows the window size so the canvas is resizable
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.Width, g.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)

	g.log.Info().Int("width", g.Width).Int("height", g.Height).Msg("window viewer started")
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "window closed with error")
	}
	return nil
}
