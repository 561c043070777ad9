package description

import (
	"fmt"
	"strings"
	"testing"
)

func TestRegistryFindPriorityOrder(t *testing.T) {
	reg := NewRegistry(0)

	generic := &StaticDescription{Key: "TEMPERATURE", EnabledByDefault: true}
	diagnostic := &StaticDescription{Key: "DIAG_TEMP", EntityCategory: EntityCategoryDiagnostic, EnabledByDefault: true}

	reg.Register(&Rule{
		Category:    CategorySensor,
		Parameters:  []string{"TEMPERATURE"},
		Description: generic,
	})
	reg.Register(&Rule{
		Category:       CategorySensor,
		Parameters:     []string{"TEMPERATURE"},
		DevicePrefixes: []string{"HmIP-BS"},
		Priority:       10,
		Description:    diagnostic,
	})

	// Higher priority wins when its device criterion matches.
	got, ok := reg.Find(Query{Category: CategorySensor, Parameter: "TEMPERATURE", DeviceModel: "HmIP-BS-2"})
	if !ok || got != diagnostic {
		t.Fatalf("Find with matching prefix = %v, want diagnostic description", got)
	}

	// Falls through to the generic rule when the device criterion fails.
	got, ok = reg.Find(Query{Category: CategorySensor, Parameter: "TEMPERATURE", DeviceModel: "HmIP-XX"})
	if !ok || got != generic {
		t.Fatalf("Find with non-matching prefix = %v, want generic description", got)
	}
}

func TestRegistryFindCaseInsensitiveParameter(t *testing.T) {
	reg := NewRegistry(0)
	desc := &StaticDescription{Key: "TEMPERATURE", EnabledByDefault: true}
	reg.Register(&Rule{Category: CategorySensor, Parameters: []string{"TEMPERATURE"}, Description: desc})

	got, ok := reg.Find(Query{Category: CategorySensor, Parameter: "temperature"})
	if !ok || got != desc {
		t.Fatalf("Find(lower-case parameter) = %v, %v; want match", got, ok)
	}
}

func TestRegistryFindStableTieBreak(t *testing.T) {
	reg := NewRegistry(0)

	first := &StaticDescription{Key: "FIRST"}
	second := &StaticDescription{Key: "SECOND"}
	reg.RegisterAll([]*Rule{
		{Category: CategorySensor, Parameters: []string{"LEVEL"}, Description: first},
		{Category: CategorySensor, Parameters: []string{"LEVEL"}, Description: second},
	})

	got, _ := reg.Find(Query{Category: CategorySensor, Parameter: "LEVEL"})
	if got != first {
		t.Fatalf("equal-priority match must return the first registered rule, got %s", got.Key)
	}
}

func TestRegistryFindFallbackChain(t *testing.T) {
	reg := NewRegistry(0)

	// No rules, no default: absent.
	if _, ok := reg.Find(Query{Category: CategoryValve}); ok {
		t.Fatal("category without rules or default must return absent")
	}

	// Default only.
	fallback := &StaticDescription{Key: "valve_default", EnabledByDefault: true}
	reg.SetDefault(CategoryValve, fallback)

	got, ok := reg.Find(Query{Category: CategoryValve, Parameter: "LEVEL"})
	if !ok || got != fallback {
		t.Fatalf("Find = %v, %v; want category default", got, ok)
	}

	// A matching rule beats the default.
	ruled := &StaticDescription{Key: "VALVE_LEVEL"}
	reg.Register(&Rule{Category: CategoryValve, Parameters: []string{"LEVEL"}, Description: ruled})

	got, _ = reg.Find(Query{Category: CategoryValve, Parameter: "LEVEL"})
	if got != ruled {
		t.Fatalf("Find = %s, want rule description over default", got.Key)
	}
}

func TestRegistryFindDeterministic(t *testing.T) {
	reg := NewRegistry(0)
	desc := &StaticDescription{Key: "POWER"}
	reg.Register(&Rule{Category: CategorySensor, Parameters: []string{"POWER"}, Description: desc})

	q := Query{Category: CategorySensor, Parameter: "POWER"}
	first, _ := reg.Find(q)
	for i := 0; i < 10; i++ {
		got, _ := reg.Find(q)
		if got != first {
			t.Fatalf("call %d returned a different result", i)
		}
	}
}

func TestRegistryFindCachesNoMatch(t *testing.T) {
	reg := NewRegistry(0)
	reg.Register(&Rule{Category: CategorySensor, Parameters: []string{"POWER"}, Description: &StaticDescription{Key: "POWER"}})

	q := Query{Category: CategorySensor, Parameter: "UNKNOWN"}
	if _, ok := reg.Find(q); ok {
		t.Fatal("want no match")
	}
	if reg.CachedResults() != 1 {
		t.Fatalf("no-match outcome must be cached, cached = %d", reg.CachedResults())
	}
	// Served from cache, still absent.
	if _, ok := reg.Find(q); ok {
		t.Fatal("cached no-match must stay absent")
	}
}

func TestRegistryRegisterInvalidatesCache(t *testing.T) {
	reg := NewRegistry(0)

	generic := &StaticDescription{Key: "TEMPERATURE"}
	reg.Register(&Rule{Category: CategorySensor, Parameters: []string{"TEMPERATURE"}, Description: generic})

	q := Query{Category: CategorySensor, Parameter: "TEMPERATURE", DeviceModel: "HmIP-BS-2"}

	// Prime the cache with the generic outcome.
	if got, _ := reg.Find(q); got != generic {
		t.Fatalf("priming Find = %v, want generic", got)
	}

	// A new higher-priority rule must be visible to the same query.
	override := &StaticDescription{Key: "DIAG_TEMP"}
	reg.Register(&Rule{
		Category:       CategorySensor,
		Parameters:     []string{"TEMPERATURE"},
		DevicePrefixes: []string{"HmIP-BS"},
		Priority:       10,
		Description:    override,
	})

	if got, _ := reg.Find(q); got != override {
		t.Fatalf("Find after registration = %v, want new rule, not stale cache", got)
	}
}

func TestRegistrySetDefaultInvalidatesCache(t *testing.T) {
	reg := NewRegistry(0)

	q := Query{Category: CategoryValve}
	if _, ok := reg.Find(q); ok {
		t.Fatal("want absent before default is set")
	}

	fallback := &StaticDescription{Key: "valve_default"}
	reg.SetDefault(CategoryValve, fallback)

	got, ok := reg.Find(q)
	if !ok || got != fallback {
		t.Fatalf("Find after SetDefault = %v, %v; want default, not stale absent", got, ok)
	}
}

func TestRegistryCacheTransparency(t *testing.T) {
	reg := NewRegistry(0)
	desc := &StaticDescription{Key: "HUMIDITY"}
	reg.Register(&Rule{Category: CategorySensor, Parameters: []string{"HUMIDITY"}, Description: desc})

	q := Query{Category: CategorySensor, Parameter: "HUMIDITY"}
	before, okBefore := reg.Find(q)

	// Re-registering the same table clears the cache; the answer must
	// not change.
	reg.RegisterAll(nil)
	if reg.CachedResults() != 0 {
		t.Fatal("RegisterAll must clear the cache")
	}

	after, okAfter := reg.Find(q)
	if okBefore != okAfter || before != after {
		t.Fatal("cache must never change the answer, only the latency")
	}
}

func TestRegistryFindEvictionRecomputes(t *testing.T) {
	reg := NewRegistry(4)
	desc := &StaticDescription{Key: "GENERIC"}
	reg.Register(&Rule{Category: CategorySensor, Description: desc})

	evicted := Query{Category: CategorySensor, Parameter: "P0"}
	if got, _ := reg.Find(evicted); got != desc {
		t.Fatal("priming lookup failed")
	}

	// Push the primed key out of the bounded cache.
	for i := 1; i <= 4; i++ {
		reg.Find(Query{Category: CategorySensor, Parameter: fmt.Sprintf("P%d", i)})
	}

	// Recomputes correctly after eviction.
	if got, _ := reg.Find(evicted); got != desc {
		t.Fatal("evicted key must recompute to the same result")
	}
}

func TestRegistryFindPanicsWithoutCategory(t *testing.T) {
	reg := NewRegistry(0)
	defer func() {
		if recover() == nil {
			t.Fatal("Find without category must panic")
		}
	}()
	reg.Find(Query{Parameter: "TEMPERATURE"})
}

func TestRegistryValidate(t *testing.T) {
	t.Run("unique keys produce no warnings", func(t *testing.T) {
		reg := NewRegistry(0)
		reg.RegisterAll([]*Rule{
			{Category: CategorySensor, Parameters: []string{"A"}, Description: &StaticDescription{Key: "A"}},
			{Category: CategorySensor, Parameters: []string{"B"}, Description: &StaticDescription{Key: "B"}},
		})
		if warnings := reg.Validate(); len(warnings) != 0 {
			t.Fatalf("Validate() = %v, want none", warnings)
		}
	})

	t.Run("duplicate key within category is reported once per repeat", func(t *testing.T) {
		reg := NewRegistry(0)
		reg.RegisterAll([]*Rule{
			{Category: CategorySensor, Parameters: []string{"A"}, Description: &StaticDescription{Key: "DUP"}},
			{Category: CategorySensor, Parameters: []string{"B"}, Description: &StaticDescription{Key: "DUP"}},
			{Category: CategorySensor, Parameters: []string{"C"}, Description: &StaticDescription{Key: "DUP"}},
		})
		warnings := reg.Validate()
		if len(warnings) != 2 {
			t.Fatalf("Validate() returned %d warnings, want 2: %v", len(warnings), warnings)
		}
		for _, w := range warnings {
			if !strings.Contains(w, "DUP") || !strings.Contains(w, string(CategorySensor)) {
				t.Errorf("warning %q must name the key and the category", w)
			}
		}
	})

	t.Run("same key across categories is not flagged", func(t *testing.T) {
		reg := NewRegistry(0)
		reg.RegisterAll([]*Rule{
			{Category: CategorySensor, Parameters: []string{"A"}, Description: &StaticDescription{Key: "STATE"}},
			{Category: CategorySwitch, Parameters: []string{"A"}, Description: &StaticDescription{Key: "STATE"}},
		})
		if warnings := reg.Validate(); len(warnings) != 0 {
			t.Fatalf("cross-category keys are deliberately unscoped, got %v", warnings)
		}
	})
}

func TestRegistryStats(t *testing.T) {
	reg := NewRegistry(0)
	reg.RegisterAll([]*Rule{
		{Category: CategorySensor, Description: &StaticDescription{Key: "A"}},
		{Category: CategorySensor, Description: &StaticDescription{Key: "B"}},
		{Category: CategorySwitch, Description: &StaticDescription{Key: "C"}},
	})

	stats := reg.Stats()
	if stats[CategorySensor] != 2 || stats[CategorySwitch] != 1 {
		t.Fatalf("Stats() = %v", stats)
	}
}
