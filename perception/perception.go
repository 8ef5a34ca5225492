// Package perception turns raw battle state into a read-only snapshot scoped
// to one acting combatant. Every derived value the scoring factors need is
// computed here.
package perception

import (
	"sort"

	"github.com/tgoodington/Ancient-Order-sub002/model"
)

// Self is the actor's own view of itself.
type Self struct {
	ID             string
	HealthFraction float64
	Energy         int
	MaxEnergy      int
	Ascension      int
	Rank           float64
	Speed          float64
	Affinity       model.Affinity
}

// Ally is a teammate of the actor, living or downed.
type Ally struct {
	ID             string
	HealthFraction float64
	KnockedOut     bool
}

// Enemy is an opposing combatant with values relative to the actor.
type Enemy struct {
	ID             string
	HealthFraction float64
	KnockedOut     bool
	RelativeSpeed  float64 // (self - enemy) / enemy, 0 when enemy speed is 0
	RelativeRank   float64 // self - enemy
}

// Snapshot is immutable once built: fields are unexported and slice
// accessors hand out fresh slices.
type Snapshot struct {
	self         Self
	allies       []Ally
	enemies      []Enemy
	lowestAlly   float64
	teamAverage  float64
	weakestEnemy int // index into enemies, -1 when every enemy is down
	averageEnemy float64
	round        int
}

// Build computes the snapshot for actor. The actor's side is whichever roster
// contains its id, player party first; an actor found in neither is treated
// as belonging to the enemy party.
func Build(actor model.Combatant, state model.BattleState) Snapshot {
	own, opposing := state.EnemyParty, state.PlayerParty
	if state.InPlayerParty(actor.ID) {
		own, opposing = state.PlayerParty, state.EnemyParty
	}

	s := Snapshot{
		self: Self{
			ID:             actor.ID,
			HealthFraction: actor.HealthFraction(),
			Energy:         actor.Energy,
			MaxEnergy:      actor.MaxEnergy,
			Ascension:      actor.Ascension,
			Rank:           actor.Rank,
			Speed:          actor.Speed,
			Affinity:       actor.Affinity,
		},
		round:        state.Round,
		weakestEnemy: -1,
	}

	s.allies = make([]Ally, 0, len(own))
	for _, c := range own {
		if c.ID == actor.ID {
			continue
		}
		s.allies = append(s.allies, Ally{ID: c.ID, HealthFraction: c.HealthFraction(), KnockedOut: c.KnockedOut})
	}
	sort.SliceStable(s.allies, func(i, j int) bool {
		return s.allies[i].HealthFraction < s.allies[j].HealthFraction
	})

	s.enemies = make([]Enemy, 0, len(opposing))
	for _, c := range opposing {
		s.enemies = append(s.enemies, Enemy{
			ID:             c.ID,
			HealthFraction: c.HealthFraction(),
			KnockedOut:     c.KnockedOut,
			RelativeSpeed:  relativeSpeed(actor.Speed, c.Speed),
			RelativeRank:   actor.Rank - c.Rank,
		})
	}
	sort.SliceStable(s.enemies, func(i, j int) bool {
		return s.enemies[i].HealthFraction < s.enemies[j].HealthFraction
	})

	s.lowestAlly = 1.0
	teamSum, teamCount := s.self.HealthFraction, 1
	for _, a := range s.allies {
		if a.KnockedOut {
			continue
		}
		// allies are sorted, so the first living one is the lowest
		if teamCount == 1 {
			s.lowestAlly = a.HealthFraction
		}
		teamSum += a.HealthFraction
		teamCount++
	}
	s.teamAverage = teamSum / float64(teamCount)

	s.averageEnemy = 1.0
	var enemySum float64
	var enemyCount int
	for i, e := range s.enemies {
		if e.KnockedOut {
			continue
		}
		if s.weakestEnemy < 0 {
			s.weakestEnemy = i
		}
		enemySum += e.HealthFraction
		enemyCount++
	}
	if enemyCount > 0 {
		s.averageEnemy = enemySum / float64(enemyCount)
	}

	return s
}

func relativeSpeed(self, enemy float64) float64 {
	if enemy == 0 {
		return 0
	}
	return (self - enemy) / enemy
}

func (s Snapshot) Self() Self { return s.self }

func (s Snapshot) Round() int { return s.round }

// LivingAllies returns the allies that are not knocked out, in snapshot order.
func (s Snapshot) LivingAllies() []Ally {
	out := make([]Ally, 0, len(s.allies))
	for _, a := range s.allies {
		if !a.KnockedOut {
			out = append(out, a)
		}
	}
	return out
}

// LivingEnemies returns the enemies that are not knocked out, in snapshot order.
func (s Snapshot) LivingEnemies() []Enemy {
	out := make([]Enemy, 0, len(s.enemies))
	for _, e := range s.enemies {
		if !e.KnockedOut {
			out = append(out, e)
		}
	}
	return out
}

// LowestAllyHealth is the lowest living ally health fraction, 1.0 with no living allies.
func (s Snapshot) LowestAllyHealth() float64 { return s.lowestAlly }

// TeamAverageHealth averages the actor and its living allies.
func (s Snapshot) TeamAverageHealth() float64 { return s.teamAverage }

// AverageEnemyHealth averages living enemies, 1.0 when none are standing.
func (s Snapshot) AverageEnemyHealth() float64 { return s.averageEnemy }

// WeakestEnemy returns the living enemy with the lowest health fraction.
func (s Snapshot) WeakestEnemy() (Enemy, bool) {
	if s.weakestEnemy < 0 {
		return Enemy{}, false
	}
	return s.enemies[s.weakestEnemy], true
}

// Enemy looks up an opponent by id.
func (s Snapshot) Enemy(id string) (Enemy, bool) {
	for _, e := range s.enemies {
		if e.ID == id {
			return e, true
		}
	}
	return Enemy{}, false
}
