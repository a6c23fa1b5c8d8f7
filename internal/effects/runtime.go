package effects

import (
	"time"

	"overgrowth/internal/terrain"
)

// Damage cooldown windows. The ambient per-tick scan and the precise
// collision callback use different windows but share one per-entity
// timestamp, so a hit on either path defers both.
const (
	AmbientDamageInterval   = 1000 * time.Millisecond
	CollisionDamageInterval = 500 * time.Millisecond
)

// entityState is the per-entity terrain bookkeeping, created lazily the
// first time an entity is evaluated against terrain and dropped when the
// entity is forgotten.
type entityState struct {
	originalSpeed float64
	speedCaptured bool
	lastDamage    time.Time
	lastTerrain   string
}

// tryDamage is the shared cooldown gate for both damage paths. It reports
// whether damage may be applied now and, if so, consumes the window.
func (s *entityState) tryDamage(now time.Time, interval time.Duration) bool {
	if now.Sub(s.lastDamage) < interval {
		return false
	}
	s.lastDamage = now
	return true
}

// Runtime applies per-tile terrain effects to every tracked entity once per
// game tick. It holds no lock: the grid is frozen after generation and the
// game loop calls Update from a single goroutine.
type Runtime struct {
	query    *terrain.Query
	entities map[string]Entity
	states   map[string]*entityState

	// OnTransition, when set, fires whenever a tracked entity's effective
	// terrain name changes. Edge-triggered; used by callers for logging or
	// transition cues, not a gameplay effect.
	OnTransition func(id, from, to string)
}

// NewRuntime builds a runtime over the level's terrain query.
func NewRuntime(q *terrain.Query) *Runtime {
	return &Runtime{
		query:    q,
		entities: make(map[string]Entity),
		states:   make(map[string]*entityState),
	}
}

// Track registers an entity under a stable identity.
func (r *Runtime) Track(id string, e Entity) {
	r.entities[id] = e
}

// Forget drops an entity and its terrain state.
func (r *Runtime) Forget(id string) {
	delete(r.entities, id)
	delete(r.states, id)
}

// Update evaluates every tracked entity against the tile under it. Missing
// or inactive entities are skipped for this tick, never an error.
func (r *Runtime) Update(now time.Time) {
	for id, e := range r.entities {
		r.apply(id, e, now)
	}
}

func (r *Runtime) apply(id string, e Entity, now time.Time) {
	if e == nil || !e.Active() {
		return
	}
	x, y := e.Position()
	eff, ok := r.query.EffectAt(x, y)
	if !ok {
		return
	}
	st := r.state(id, now)

	// Slow effects always recompute from the captured original speed so
	// consecutive ticks on the same tile never compound. Restoration clears
	// the capture, so speed changes made elsewhere survive until the next
	// slowing tile re-captures.
	if eff.SlowFactor < 1 {
		if !st.speedCaptured {
			st.originalSpeed = e.Speed()
			st.speedCaptured = true
		}
		e.SetSpeed(st.originalSpeed * eff.SlowFactor)
	} else if st.speedCaptured {
		e.SetSpeed(st.originalSpeed)
		st.speedCaptured = false
	}

	if eff.Damage > 0 {
		if d, ok := e.(TakesTerrainDamage); ok && st.tryDamage(now, AmbientDamageInterval) {
			d.Damage(eff.Damage)
		}
	}

	if eff.Name != st.lastTerrain {
		if r.OnTransition != nil && st.lastTerrain != "" {
			r.OnTransition(id, st.lastTerrain, eff.Name)
		}
		st.lastTerrain = eff.Name
	}
}

// state returns the entity's terrain state, creating it on first contact.
// The damage stamp starts at now so a fresh entity serves a full cooldown
// before its first terrain damage.
func (r *Runtime) state(id string, now time.Time) *entityState {
	st, ok := r.states[id]
	if !ok {
		st = &entityState{lastDamage: now}
		r.states[id] = st
	}
	return st
}
