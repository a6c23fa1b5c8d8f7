package terrain

import "testing"

func TestEffectRegistryCoversEveryType(t *testing.T) {
	seen := make(map[string]Type)
	for _, typ := range Types() {
		eff := EffectOf(typ)
		if eff.Name == "" {
			t.Fatalf("type %d has no display name", typ)
		}
		if prev, dup := seen[eff.Name]; dup {
			t.Fatalf("types %d and %d share the name %q", prev, typ, eff.Name)
		}
		seen[eff.Name] = typ
		if eff.SlowFactor <= 0 || eff.SlowFactor > 1 {
			t.Fatalf("%s slow factor %f outside (0, 1]", eff.Name, eff.SlowFactor)
		}
		if eff.Damage < 0 {
			t.Fatalf("%s has negative damage", eff.Name)
		}
	}
}

func TestCosmeticTypesHaveNoEffect(t *testing.T) {
	for _, typ := range []Type{Floor, Meadow} {
		eff := EffectOf(typ)
		if eff.SlowFactor != 1.0 || eff.Damage != 0 {
			t.Fatalf("%s must be purely cosmetic, got %+v", eff.Name, eff)
		}
	}
}

func TestSolidTypes(t *testing.T) {
	solid := SolidTypes()
	if len(solid) != 2 || solid[0] != Swamp || solid[1] != Border {
		t.Fatalf("expected [swamp border], got %v", solid)
	}
	if Meadow.Solid() || Forest.Solid() {
		t.Fatal("walkable types must not register as solid")
	}
}
