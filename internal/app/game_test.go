package app

import (
	"errors"
	"testing"

	"rtd-tower-defense/internal/assets"
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/interfaces"
	"rtd-tower-defense/internal/system"
	"rtd-tower-defense/internal/utils"
)

func newTestGame(t *testing.T, def *defs.LevelDefinition, store *assets.MemoryStore, seed int64) *Game {
	t.Helper()
	g, err := NewGame(def, store, store, utils.NewPRNGService(seed))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// shortLevel — прямой путь длиной 100 px и одна башня вдали от него.
func shortLevel() *defs.LevelDefinition {
	def := defs.DefaultLevel()
	def.Path = []defs.Waypoint{{X: 0, Y: 480}, {X: 100, Y: 480}}
	def.Turrets = []defs.TurretSlot{{X: 1000, Y: 100, Tier: component.TierElectricBase, Speed: 12, Damage: 20, Range: 160, Price: 125}}
	return def
}

func TestNewGameDefaults(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 1)

	if g.Wave != 1 || g.Health != 100 || g.Currency() != 300 {
		t.Errorf("got wave=%d health=%d currency=%d, want 1/100/300", g.Wave, g.Health, g.Currency())
	}
	if len(g.Turrets) != 7 {
		t.Errorf("expected 7 turrets, got %d", len(g.Turrets))
	}
	if g.Enemies != nil {
		t.Errorf("no batch expected before the first frame")
	}
	if g.IsOver() || g.Outcome != component.OutcomeNone {
		t.Errorf("fresh session must be playing")
	}
	if got := assets.PathOf(g.Turrets[0].Visual); got != defs.TierDefs[component.TierElectricBase].VisualPath {
		t.Errorf("turret 0 visual = %q", got)
	}
	if g.Turrets[0].Sound != nil {
		t.Errorf("base turret must not have a shot sound")
	}
}

func TestNewGameFailures(t *testing.T) {
	tests := []struct {
		name    string
		def     func() *defs.LevelDefinition
		missing []string
		wantErr error
	}{
		{
			name:    "nil level",
			def:     func() *defs.LevelDefinition { return nil },
			wantErr: defs.ErrInvalidLevel,
		},
		{
			name: "single waypoint",
			def: func() *defs.LevelDefinition {
				d := defs.DefaultLevel()
				d.Path = d.Path[:1]
				return d
			},
			wantErr: defs.ErrInvalidLevel,
		},
		{
			name: "no turrets",
			def: func() *defs.LevelDefinition {
				d := defs.DefaultLevel()
				d.Turrets = nil
				return d
			},
			wantErr: defs.ErrInvalidLevel,
		},
		{
			name:    "missing background",
			def:     defs.DefaultLevel,
			missing: []string{defs.DefaultLevel().BackgroundPath},
			wantErr: interfaces.ErrAssetNotFound,
		},
		{
			name:    "missing enemy visual",
			def:     defs.DefaultLevel,
			missing: []string{defs.DefaultLevel().EnemyVisualPath},
			wantErr: interfaces.ErrAssetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := assets.NewMemoryStore(tt.missing...)
			g, err := NewGame(tt.def(), store, store, utils.NewPRNGService(1))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if g != nil {
				t.Errorf("no session expected on failure")
			}
			if store.Outstanding() != 0 {
				t.Errorf("failed construction leaked %d handles", store.Outstanding())
			}
		})
	}
}

func TestNewGameToleratesMissingSounds(t *testing.T) {
	store := assets.NewMemoryStore(defs.SoundLeak, defs.SoundWin, defs.TierDefs[component.TierElectric1].VisualPath)
	g := newTestGame(t, shortLevel(), store, 3)

	for i := 0; i < 5000 && g.Wave == 1; i++ {
		g.Update()
	}
	if g.Stats.Leaks != 3 {
		t.Fatalf("expected 3 leaks, got %d", g.Stats.Leaks)
	}
	if store.PlayCount(defs.SoundLeak) != 0 {
		t.Errorf("missing leak sound must not be played")
	}

	g.AddCurrency(1000)
	if err := g.UpgradeTurret(0); err != nil {
		t.Fatalf("upgrade without a tier visual should still succeed: %v", err)
	}
	if g.Turrets[0].Visual != nil {
		t.Errorf("turret visual should be absent")
	}
	if g.Turrets[0].Sound == nil {
		t.Errorf("shot sound should be loaded")
	}
}

func TestFirstFrameSpawnsBatch(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 9)

	g.Update()
	if len(g.Enemies) != system.EnemiesToSpawn(1) {
		t.Fatalf("expected %d enemies, got %d", system.EnemiesToSpawn(1), len(g.Enemies))
	}
	if g.AliveEnemies() != 3 {
		t.Errorf("expected 3 alive enemies, got %d", g.AliveEnemies())
	}
	for i, e := range g.Enemies {
		if e.Position.X >= 0 {
			t.Errorf("enemy %d spawned on screen at x=%d", i, e.Position.X)
		}
		if e.Health != 124 {
			t.Errorf("enemy %d health = %d, want 124", i, e.Health)
		}
	}
}

func TestWaveClearPaysBonusAndRespawns(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 9)

	g.Update()
	for i := range g.Enemies {
		g.Enemies[i].Alive = false
	}
	g.Update()

	if g.Wave != 2 {
		t.Fatalf("expected wave 2, got %d", g.Wave)
	}
	if g.Currency() != 310 {
		t.Errorf("expected currency 310, got %d", g.Currency())
	}
	if len(g.Enemies) != system.EnemiesToSpawn(2) || g.AliveEnemies() != 4 {
		t.Errorf("expected a fresh batch of 4, got %d (%d alive)", len(g.Enemies), g.AliveEnemies())
	}
	if g.Stats.WavesCleared != 1 {
		t.Errorf("expected 1 cleared wave, got %d", g.Stats.WavesCleared)
	}
}

func TestLeakDamagesPlayerOncePerEnemy(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, shortLevel(), store, 5)

	for i := 0; i < 5000 && g.Wave == 1; i++ {
		g.Update()
	}
	if g.Wave != 2 {
		t.Fatalf("wave 1 never ended")
	}
	if g.Health != 97 {
		t.Errorf("expected health 97 after 3 leaks at wave 1, got %d", g.Health)
	}
	if g.Stats.Leaks != 3 || store.PlayCount(defs.SoundLeak) != 3 {
		t.Errorf("expected 3 leaks and 3 leak sounds, got %d and %d", g.Stats.Leaks, store.PlayCount(defs.SoundLeak))
	}
	// утёкшие враги тоже считаются зачисткой волны
	if g.Currency() != 310 {
		t.Errorf("expected currency 310, got %d", g.Currency())
	}
}

func TestLossPlaysSoundOnce(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 2)

	g.Health = 0
	g.Update()
	if !g.IsOver() || g.Outcome != component.OutcomeLost {
		t.Fatalf("expected lost session, got phase=%v outcome=%v", g.Phase, g.Outcome)
	}

	g.Update()
	g.end()
	if n := store.PlayCount(defs.SoundLose); n != 1 {
		t.Errorf("lose sound played %d times, want 1", n)
	}
	if store.PlayCount(defs.SoundWin) != 0 {
		t.Errorf("win sound must not play on a loss")
	}
}

func TestWinAfterWaveThirty(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 2)

	g.Wave = 31
	g.Health = 0
	g.Update()
	g.Update()

	if g.Outcome != component.OutcomeWon {
		t.Fatalf("expected a win past wave 30, got %v", g.Outcome)
	}
	if n := store.PlayCount(defs.SoundWin); n != 1 {
		t.Errorf("win sound played %d times, want 1", n)
	}
}

func TestWaveThirtyIsStillALoss(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 2)

	g.Wave = 30
	g.Health = -5
	g.Update()

	if g.Outcome != component.OutcomeLost {
		t.Errorf("expected a loss at wave 30, got %v", g.Outcome)
	}
	if g.DisplayHealth() != 0 {
		t.Errorf("display health must be clamped, got %d", g.DisplayHealth())
	}
}

func TestHandleClickUpgradesTurret(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 4)

	if n := g.HandleClick(290, 280); n != 1 {
		t.Fatalf("expected 1 upgrade, got %d", n)
	}
	turret := g.Turrets[0]
	if turret.Tier != component.TierElectric1 || turret.Price != 187 {
		t.Errorf("got tier=%d price=%d, want 1/187", turret.Tier, turret.Price)
	}
	if g.Currency() != 175 {
		t.Errorf("expected currency 175, got %d", g.Currency())
	}
	if got := assets.PathOf(turret.Visual); got != defs.TierDefs[component.TierElectric1].VisualPath {
		t.Errorf("turret visual = %q", got)
	}
	if store.PlayCount(defs.SoundConfirm) != 1 {
		t.Errorf("confirm sound not played")
	}

	if n := g.HandleClick(288, 288); n != 0 {
		t.Errorf("upgrade should be denied, got %d", n)
	}
	if g.Currency() != 175 || g.Turrets[0].Tier != component.TierElectric1 {
		t.Errorf("denied upgrade changed state")
	}
	if store.PlayCount(defs.SoundDeny) != 1 || g.Stats.DeniedUpgrades != 1 {
		t.Errorf("expected one deny sound and one denied upgrade")
	}

	if n := g.HandleClick(10, 10); n != 0 {
		t.Errorf("click on empty ground upgraded %d turrets", n)
	}
}

func TestInputIgnoredAfterEnd(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 4)

	g.Health = 0
	g.Update()
	if n := g.HandleClick(288, 288); n != 0 {
		t.Errorf("click after the end upgraded %d turrets", n)
	}
	if g.Currency() != 300 {
		t.Errorf("currency changed after the end: %d", g.Currency())
	}
	if store.PlayCount(defs.SoundDeny) != 0 || store.PlayCount(defs.SoundConfirm) != 0 {
		t.Errorf("no upgrade sound expected after the end")
	}
}

func TestTurretAt(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 4)

	turret, ok := g.TurretAt(300, 300)
	if !ok || turret != &g.Turrets[0] {
		t.Errorf("expected turret 0 under (300,300)")
	}
	if _, ok := g.TurretAt(0, 0); ok {
		t.Errorf("no turret expected under (0,0)")
	}
	if g.CheapestUpgrade() != 0 {
		t.Errorf("expected slot 0 to be the cheapest, got %d", g.CheapestUpgrade())
	}
}

func TestUpgradeTurretOutOfRange(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 4)

	if err := g.UpgradeTurret(len(g.Turrets)); !errors.Is(err, ErrNoTurret) {
		t.Errorf("expected ErrNoTurret, got %v", err)
	}
	if err := g.UpgradeTurret(6); !errors.Is(err, system.ErrInsufficientCurrency) {
		t.Errorf("expected ErrInsufficientCurrency, got %v", err)
	}
}

func TestCloseReleasesEverythingOnce(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 8)

	g.AddCurrency(5000)
	for i := 0; i < 4; i++ {
		if err := g.UpgradeTurret(0); err != nil {
			t.Fatalf("upgrade %d: %v", i, err)
		}
	}
	if err := g.UpgradeTurret(4); err != nil {
		t.Fatalf("sniper upgrade: %v", err)
	}
	for i := 0; i < 300; i++ {
		g.Update()
	}

	g.Close()
	if store.Outstanding() != 0 {
		t.Errorf("%d handles still held after Close", store.Outstanding())
	}
	g.Close()
	if store.DoubleReleases() != 0 {
		t.Errorf("%d handles released twice", store.DoubleReleases())
	}
}

func TestDefaultLevelWithoutUpgradesIsLost(t *testing.T) {
	store := assets.NewMemoryStore()
	g := newTestGame(t, defs.DefaultLevel(), store, 11)

	for i := 0; i < 100000 && !g.IsOver(); i++ {
		g.Update()
	}
	if !g.IsOver() {
		t.Fatalf("session never ended")
	}
	if g.Outcome != component.OutcomeLost {
		t.Errorf("base turrets never fire, expected a loss, got %v", g.Outcome)
	}
	if g.Stats.Kills != 0 || g.Stats.ShotsFired != 0 {
		t.Errorf("base turrets fired: kills=%d shots=%d", g.Stats.Kills, g.Stats.ShotsFired)
	}
	if store.PlayCount(defs.SoundLose) != 1 {
		t.Errorf("lose sound played %d times", store.PlayCount(defs.SoundLose))
	}
}

func TestSameSeedSameSession(t *testing.T) {
	storeA, storeB := assets.NewMemoryStore(), assets.NewMemoryStore()
	a := newTestGame(t, defs.DefaultLevel(), storeA, 42)
	b := newTestGame(t, defs.DefaultLevel(), storeB, 42)

	for frame := 0; frame < 3000; frame++ {
		if frame == 10 {
			a.HandleClick(288, 288)
			b.HandleClick(288, 288)
		}
		a.Update()
		b.Update()

		if a.Wave != b.Wave || a.Health != b.Health || a.Currency() != b.Currency() {
			t.Fatalf("frame %d: sessions diverged", frame)
		}
		if len(a.Enemies) != len(b.Enemies) {
			t.Fatalf("frame %d: batch sizes differ", frame)
		}
		for i := range a.Enemies {
			ea, eb := a.Enemies[i], b.Enemies[i]
			if ea.Position != eb.Position || ea.Health != eb.Health || ea.Alive != eb.Alive || ea.Speed != eb.Speed {
				t.Fatalf("frame %d: enemy %d differs: %+v vs %+v", frame, i, ea.Position, eb.Position)
			}
		}
	}
	if a.Stats.ShotsFired == 0 {
		t.Errorf("upgraded turret never fired")
	}
}
