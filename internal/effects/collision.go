package effects

import "time"

// HandleCollision is the event-driven damage path. The physics broad-phase
// reports the exact tile an entity overlapped, which is narrower than the
// ambient position sample, so it runs on a shorter window. Both paths go
// through the same per-entity cooldown stamp: damage applied here pushes
// the ambient window out too, and vice versa.
func (r *Runtime) HandleCollision(id string, e Entity, tileX, tileY int, now time.Time) {
	if e == nil || !e.Active() {
		return
	}
	eff, ok := r.query.EffectAtTile(tileX, tileY)
	if !ok || eff.Damage == 0 {
		return
	}
	d, ok := e.(TakesTerrainDamage)
	if !ok {
		return
	}
	if r.state(id, now).tryDamage(now, CollisionDamageInterval) {
		d.Damage(eff.Damage)
	}
}
