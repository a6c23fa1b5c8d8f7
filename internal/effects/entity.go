package effects

// Entity is the minimal surface the terrain runtime needs from a tracked
// entity. Position is in world coordinates; Speed is the entity's current
// movement speed, which the runtime rewrites while a slow effect holds.
type Entity interface {
	Position() (x, y float64)
	Speed() float64
	SetSpeed(v float64)
	Active() bool
}

// TakesTerrainDamage marks entity kinds terrain can hurt. Entities that do
// not implement it are slowed but never damaged, whatever tile they stand
// on. The runtime queries this capability instead of inspecting concrete
// entity types.
type TakesTerrainDamage interface {
	Damage(amount int)
}
