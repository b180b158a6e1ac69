// internal/state/play_state.go
package state

import (
	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/ui"
	"rtd-tower-defense/pkg/logger"
	"rtd-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// PlayState runs the session: one simulation frame per tick, clicks become upgrade requests.
type PlayState struct {
	sm        *StateMachine
	game      *app.Game
	music     MusicPlayer
	fonts     *ui.Fonts
	hud       *ui.HUD
	infoPanel *ui.InfoPanel
}

func NewPlayState(sm *StateMachine, game *app.Game, music MusicPlayer, fonts *ui.Fonts) *PlayState {
	return &PlayState{
		sm:        sm,
		game:      game,
		music:     music,
		fonts:     fonts,
		hud:       ui.NewHUD(fonts.Title, fonts.HUD, fonts.Small),
		infoPanel: ui.NewInfoPanel(fonts.Small),
	}
}

func (s *PlayState) Enter() {
	if s.music == nil {
		return
	}
	if err := s.music.PlayMusic(defs.MusicTrack); err != nil {
		logger.Log.WithFields(logrus.Fields{"path": defs.MusicTrack, "error": err}).Warn("Music not started")
	}
}

func (s *PlayState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}

	ebiten.SetTPS(config.TicksPerSecond(s.game.Wave, false))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.game.HandleClick(x, y)
	}

	s.game.Update()

	if s.game.IsOver() {
		if s.music != nil {
			s.music.StopMusic()
		}
		s.sm.SetState(NewEndState(s.sm, s.game, s.fonts))
	}
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if bg, ok := s.game.Level.Background.(*ebiten.Image); ok {
		render.DrawFullscreen(screen, bg)
	}

	for i := range s.game.Enemies {
		e := &s.game.Enemies[i]
		if !e.Alive {
			continue
		}
		if img, ok := e.Visual.(*ebiten.Image); ok {
			render.DrawCentered(screen, img, e.Position.X, e.Position.Y, config.EnemySize)
		}
		ui.DrawHealthBar(screen, e, s.game.HealthBarWidth(e))
	}

	for i := range s.game.Turrets {
		t := &s.game.Turrets[i]
		if img, ok := t.Visual.(*ebiten.Image); ok {
			render.DrawCentered(screen, img, t.Position.X, t.Position.Y, config.TurretSize)
		}
	}

	x, y := ebiten.CursorPosition()
	s.hud.Draw(screen, s.game, x, y)
	if t, ok := s.game.TurretAt(x, y); ok {
		s.infoPanel.Draw(screen, t)
	}
}

func (s *PlayState) Exit() {}
