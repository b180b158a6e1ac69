// internal/component/turret.go
package component

// Tier is a turret upgrade level. 0-3 is the electric line, 4-7 the sniper line.
type Tier int

const (
	TierElectricBase Tier = iota
	TierElectric1
	TierElectric2
	TierElectric3
	TierSniperBase
	TierSniper1
	TierSniper2
	TierSniper3
)

// Branch groups tiers into upgrade lines.
type Branch string

const (
	BranchElectric Branch = "ELECTRIC"
	BranchSniper   Branch = "SNIPER"
)

func (t Tier) Branch() Branch {
	if t >= TierSniperBase {
		return BranchSniper
	}
	return BranchElectric
}

// IsBase reports whether the turret was never upgraded. Base turrets do not fire.
func (t Tier) IsBase() bool {
	return t == TierElectricBase || t == TierSniperBase
}

// IsFinal reports whether the tier only repeats its own upgrade.
func (t Tier) IsFinal() bool {
	return t == TierElectric3 || t == TierSniper3
}

// Turret — башня в фиксированном слоте уровня.
type Turret struct {
	Position Position
	Cooldown int // кадров до следующего выстрела
	Speed    int // период перезарядки в кадрах
	Tier     Tier
	Damage   int
	Range    int
	Price    int // цена следующего улучшения
	Visual   VisualHandle
	Sound    SoundHandle // звук выстрела, nil у базовых башен
}
