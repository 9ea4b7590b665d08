// Package terminal runs the viewer inside a terminal using tcell.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/olivierh59500/gravity-sandbox/internal/config"
	"github.com/olivierh59500/gravity-sandbox/internal/input"
	"github.com/olivierh59500/gravity-sandbox/internal/render"
	"github.com/olivierh59500/gravity-sandbox/internal/sim"
)

// TPS is the target number of frames per second
const TPS = 60

// Run drives session on screen until ctx is done or a quit key is pressed.
// All session access happens on the calling goroutine; terminal events and
// settings reloads arrive over channels.
func Run(ctx context.Context, screen tcell.Screen, session *sim.Session, settings <-chan config.Settings, log zerolog.Logger) error {
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / TPS)
	defer ticker.Stop()

	frame := render.NewDisplayList(0, 0)
	surf := &surface{screen: screen}
	tr := &translator{}

	log.Info().Msg("terminal viewer started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("terminal viewer stopped")
			return nil

		case s := <-settings:
			session.Apply(s)

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					log.Info().Msg("quit requested")
					return nil
				}
				if k, ok := key(ev); ok {
					session.Handle(input.Event{Kind: input.KeyDown, Key: k})
				}
			case *tcell.EventMouse:
				for _, e := range tr.mouse(ev) {
					session.Handle(e)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			w, h := surf.Size()
			frame.SetSize(w, h)
			session.Tick(frame)
			frame.Replay(surf)
			screen.Show()
		}
	}
}
