// internal/app/game.go
package app

import (
	"fmt"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/event"
	"rtd-tower-defense/internal/interfaces"
	"rtd-tower-defense/internal/system"
	"rtd-tower-defense/internal/utils"
	"rtd-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

var _ interfaces.GameContext = (*Game)(nil)

// uiSounds — звуки, которые проигрывает сама сессия.
type uiSounds struct {
	Confirm component.SoundHandle
	Deny    component.SoundHandle
	Win     component.SoundHandle
	Lose    component.SoundHandle
	Leak    component.SoundHandle
}

// Game holds the whole session state. It is owned by the single update step.
type Game struct {
	Level   *component.Level
	Wave    int
	Health  int
	Enemies []component.Enemy // nil until the first batch is spawned
	Turrets []component.Turret
	Phase   component.Phase
	Outcome component.Outcome
	Stats   *Stats
	Frame   int

	WaveSystem      *system.WaveSystem
	MovementSystem  *system.MovementSystem
	TowerSystem     *system.TowerSystem
	CombatSystem    *system.CombatSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	currency    int
	loader      interfaces.AssetLoader
	sounds      interfaces.SoundPlayer
	enemyVisual component.VisualHandle
	ui          uiSounds
	closed      bool
}

// NewGame validates the level and builds a session on it.
// The background and enemy visuals are required; every other asset may be missing.
func NewGame(def *defs.LevelDefinition, loader interfaces.AssetLoader, sounds interfaces.SoundPlayer, rng *utils.PRNGService) (*Game, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: no level definition", defs.ErrInvalidLevel)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	background, err := loader.LoadVisual(def.BackgroundPath)
	if err != nil {
		return nil, fmt.Errorf("load level background: %w", err)
	}
	var enemyVisual component.VisualHandle
	if def.EnemyVisualPath != "" {
		enemyVisual, err = loader.LoadVisual(def.EnemyVisualPath)
		if err != nil {
			loader.ReleaseVisual(background)
			return nil, fmt.Errorf("load enemy visual: %w", err)
		}
	}

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Level: &component.Level{
			StartCurrency: def.StartCurrency,
			Path:          def.Positions(),
			MaxTurrets:    len(def.Turrets),
			Background:    background,
		},
		Wave:            1,
		Health:          config.BaseHealth,
		Phase:           component.PhasePlaying,
		Outcome:         component.OutcomeNone,
		Stats:           &Stats{},
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		currency:        def.StartCurrency,
		loader:          loader,
		sounds:          sounds,
		enemyVisual:     enemyVisual,
	}
	g.WaveSystem = system.NewWaveSystem(rng, enemyVisual)
	g.MovementSystem = system.NewMovementSystem(g.Level.Path, g, eventDispatcher)
	g.TowerSystem = system.NewTowerSystem(g, loader, sounds, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g, eventDispatcher)

	g.ui = uiSounds{
		Confirm: g.loadSound(defs.SoundConfirm),
		Deny:    g.loadSound(defs.SoundDeny),
		Win:     g.loadSound(defs.SoundWin),
		Lose:    g.loadSound(defs.SoundLose),
		Leak:    g.loadSound(defs.SoundLeak),
	}

	g.Turrets = make([]component.Turret, 0, len(def.Turrets))
	for _, slot := range def.Turrets {
		g.Turrets = append(g.Turrets, g.TowerSystem.NewTurret(slot))
	}

	eventDispatcher.Subscribe(&soundListener{sounds: sounds, ui: &g.ui},
		event.EnemyLeaked, event.TurretFired, event.TurretUpgraded, event.UpgradeDenied, event.GameEnded)
	eventDispatcher.Subscribe(g.Stats,
		event.EnemyKilled, event.EnemyLeaked, event.TurretFired, event.TurretUpgraded,
		event.UpgradeDenied, event.WaveCleared)

	logger.Log.WithFields(logrus.Fields{
		"level_name": def.Name,
		"seed":       rng.Seed(),
		"turrets":    len(g.Turrets),
		"currency":   g.currency,
	}).Info("Game session created")

	return g, nil
}

func (g *Game) loadSound(path string) component.SoundHandle {
	handle, err := g.sounds.LoadSound(path)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("Sound not loaded")
		return nil
	}
	return handle
}

// Update progresses the session by one frame. It does nothing once the session has ended.
func (g *Game) Update() {
	if g.Phase == component.PhaseEnded {
		return
	}
	g.Frame++

	target := system.EnemiesToSpawn(g.Wave)
	if g.Enemies == nil {
		g.Enemies = g.WaveSystem.SpawnWave(g.Wave, target)
		g.dispatchWaveStarted()
	}

	if system.CountAlive(g.Enemies) == 0 {
		g.clearWave()
	}

	g.MovementSystem.Update(g.Enemies)
	g.CombatSystem.Update(g.Turrets, g.Enemies)

	if g.Health <= 0 {
		g.end()
	}
}

// clearWave pays the wave bonus and replaces the batch with one sized for the next wave.
func (g *Game) clearWave() {
	bonus := g.Wave * config.WaveClearBonus
	g.currency += bonus
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveData{Wave: g.Wave, Enemies: len(g.Enemies), Bonus: bonus},
	})
	logger.Log.WithFields(logrus.Fields{
		"wave":     g.Wave,
		"bonus":    bonus,
		"currency": g.currency,
		"health":   g.Health,
	}).Info("Wave cleared")

	g.Wave++
	g.Enemies = g.WaveSystem.SpawnWave(g.Wave, system.EnemiesToSpawn(g.Wave))
	g.dispatchWaveStarted()
}

func (g *Game) dispatchWaveStarted() {
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Wave: g.Wave, Enemies: len(g.Enemies)},
	})
	logger.Log.WithFields(logrus.Fields{"wave": g.Wave, "enemies": len(g.Enemies)}).Debug("Wave started")
}

// end moves the session to its terminal state. Calling it again has no effect.
func (g *Game) end() {
	if g.Phase == component.PhaseEnded {
		return
	}
	g.Phase = component.PhaseEnded
	if g.Wave > config.WinWave {
		g.Outcome = component.OutcomeWon
	} else {
		g.Outcome = component.OutcomeLost
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameEnded,
		Data: event.GameEndedData{Outcome: g.Outcome, Wave: g.Wave},
	})
	logger.Log.WithFields(logrus.Fields{
		"outcome": g.Outcome.String(),
		"wave":    g.Wave,
		"frames":  g.Frame,
	}).WithFields(g.Stats.Fields()).Info("Game over")
}

// IsOver reports whether the session reached its terminal state.
func (g *Game) IsOver() bool {
	return g.Phase == component.PhaseEnded
}

// Close releases every handle the session still holds. Only the first call does anything.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true

	for i := range g.Turrets {
		t := &g.Turrets[i]
		if t.Visual != nil {
			g.loader.ReleaseVisual(t.Visual)
			t.Visual = nil
		}
		if t.Sound != nil {
			g.sounds.ReleaseSound(t.Sound)
			t.Sound = nil
		}
	}
	// все враги делят один спрайт
	for i := range g.Enemies {
		g.Enemies[i].Visual = nil
	}
	if g.enemyVisual != nil {
		g.loader.ReleaseVisual(g.enemyVisual)
		g.enemyVisual = nil
	}
	if g.Level.Background != nil {
		g.loader.ReleaseVisual(g.Level.Background)
		g.Level.Background = nil
	}
	for _, handle := range []*component.SoundHandle{&g.ui.Confirm, &g.ui.Deny, &g.ui.Win, &g.ui.Lose, &g.ui.Leak} {
		if *handle != nil {
			g.sounds.ReleaseSound(*handle)
			*handle = nil
		}
	}
	logger.Log.Debug("Game session closed")
}

// --- GameContext ---

func (g *Game) CurrentWave() int { return g.Wave }

func (g *Game) Currency() int { return g.currency }

func (g *Game) AddCurrency(amount int) { g.currency += amount }

func (g *Game) SpendCurrency(amount int) { g.currency -= amount }

func (g *Game) DamagePlayer(amount int) { g.Health -= amount }

// --- Accessors for the presentation layer ---

// DisplayHealth is the player health clamped at zero.
func (g *Game) DisplayHealth() int {
	if g.Health < 0 {
		return 0
	}
	return g.Health
}

// AliveEnemies returns how many enemies of the current batch are alive.
func (g *Game) AliveEnemies() int {
	return system.CountAlive(g.Enemies)
}

// EnemyHealthFraction returns the share of full wave health an enemy still has.
func (g *Game) EnemyHealthFraction(e *component.Enemy) float64 {
	full := system.EnemyHealth(g.Wave)
	if full <= 0 {
		return 0
	}
	return float64(e.Health) / full
}
