package terrain

import "fmt"

// Type enumerates the terrain kinds a grid cell can hold.
type Type uint8

const (
	Floor Type = iota
	Meadow
	Bush
	Forest
	Swamp
	Border

	typeCount
)

// Effect describes the gameplay parameters attached to a terrain type.
// SlowFactor multiplies an entity's base speed while it stands on the tile;
// Damage is applied per cooldown window, not per tick.
type Effect struct {
	Name       string
	SlowFactor float64
	Damage     int
}

// EffectOf returns the effect record for the given terrain type. Every
// enumerated type has exactly one record; an unknown value is a programming
// error and panics.
func EffectOf(t Type) Effect {
	switch t {
	case Floor:
		return Effect{Name: "floor", SlowFactor: 1.0}
	case Meadow:
		return Effect{Name: "meadow", SlowFactor: 1.0}
	case Bush:
		return Effect{Name: "bush", SlowFactor: 0.8}
	case Forest:
		return Effect{Name: "forest", SlowFactor: 0.6}
	case Swamp:
		return Effect{Name: "swamp", SlowFactor: 0.4, Damage: 5}
	case Border:
		return Effect{Name: "border", SlowFactor: 1.0, Damage: 10}
	}
	panic(fmt.Sprintf("terrain: no effect record for type %d", t))
}

// Types returns all enumerated terrain types.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Solid reports whether the collision layer should treat the type as a
// blocking body. Solid tiles are registered with the physics broad-phase,
// which calls back into the collision handler on contact.
func (t Type) Solid() bool {
	return t == Border || t == Swamp
}

// SolidTypes lists the terrain types the collision layer must register.
func SolidTypes() []Type {
	var out []Type
	for _, t := range Types() {
		if t.Solid() {
			out = append(out, t)
		}
	}
	return out
}

// String returns the display name of the terrain type.
func (t Type) String() string { return EffectOf(t).Name }
