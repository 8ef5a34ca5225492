package model

// Affinity is the elemental category a combatant or archetype belongs to.
type Affinity string

const (
	AffinityFire   Affinity = "fire"
	AffinityWater  Affinity = "water"
	AffinityEarth  Affinity = "earth"
	AffinityWind   Affinity = "wind"
	AffinityLight  Affinity = "light"
	AffinityShadow Affinity = "shadow"
)

// Affinities lists every elemental category in declaration order.
var Affinities = []Affinity{AffinityFire, AffinityWater, AffinityEarth, AffinityWind, AffinityLight, AffinityShadow}

// Valid reports whether a is one of the six known affinities.
func (a Affinity) Valid() bool {
	for _, known := range Affinities {
		if a == known {
			return true
		}
	}
	return false
}

// Combatant is owned by the battle-state layer. The decision engine only reads it.
type Combatant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ArchetypeID string   `json:"archetypeId"`
	Rank        float64  `json:"rank"`
	Stamina     int      `json:"stamina"`
	MaxStamina  int      `json:"maxStamina"`
	Energy      int      `json:"energy"`
	MaxEnergy   int      `json:"maxEnergy"`
	Ascension   int      `json:"ascension"` // 0–3, consumed by the resolution pipeline
	Speed       float64  `json:"speed"`
	Affinity    Affinity `json:"affinity"`
	KnockedOut  bool     `json:"knockedOut"`
}

// HealthFraction is current over max stamina, 0 when max stamina is 0.
func (c Combatant) HealthFraction() float64 {
	if c.MaxStamina <= 0 {
		return 0
	}
	return float64(c.Stamina) / float64(c.MaxStamina)
}

func (c Combatant) Alive() bool { return !c.KnockedOut }

// BattleState is the read-only view of a battle supplied by the round orchestrator.
type BattleState struct {
	ID          string      `json:"id"`
	PlayerParty []Combatant `json:"playerParty"`
	EnemyParty  []Combatant `json:"enemyParty"`
	Round       int         `json:"round"`
	Phase       string      `json:"phase"`
	Status      string      `json:"status"`
}

// Find returns the combatant with the given id, scanning the player party first.
func (s BattleState) Find(id string) (Combatant, bool) {
	for _, c := range s.PlayerParty {
		if c.ID == id {
			return c, true
		}
	}
	for _, c := range s.EnemyParty {
		if c.ID == id {
			return c, true
		}
	}
	return Combatant{}, false
}

// InPlayerParty reports whether id is on the player roster.
func (s BattleState) InPlayerParty(id string) bool {
	for _, c := range s.PlayerParty {
		if c.ID == id {
			return true
		}
	}
	return false
}
