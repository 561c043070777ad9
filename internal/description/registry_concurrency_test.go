package description

import (
	"fmt"
	"sync"
	"testing"
)

// TestConcurrentFindAndRegister verifies that Find, Register and Validate
// are race-free under concurrent use and that lookups after a
// registration never serve stale cached outcomes.
func TestConcurrentFindAndRegister(t *testing.T) {
	reg := NewRegistry(64)

	base := &StaticDescription{Key: "TEMPERATURE", EnabledByDefault: true}
	reg.Register(&Rule{Category: CategorySensor, Parameters: []string{"TEMPERATURE"}, Description: base})
	reg.SetDefault(CategorySensor, &StaticDescription{Key: "sensor_default"})

	const (
		readers = 8
		lookups = 500
	)

	var wg sync.WaitGroup
	for w := 0; w < readers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < lookups; i++ {
				q := Query{
					Category:    CategorySensor,
					Parameter:   "TEMPERATURE",
					DeviceModel: fmt.Sprintf("HmIP-M%d-%d", w, i%10),
				}
				if desc, ok := reg.Find(q); !ok || desc == nil {
					t.Errorf("Find returned absent for a query with a matching rule")
					return
				}
			}
		}(w)
	}

	// Writer registers new rules while readers look up.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			reg.Register(&Rule{
				Category:    CategorySensor,
				Parameters:  []string{fmt.Sprintf("EXTRA_%d", i)},
				Description: &StaticDescription{Key: fmt.Sprintf("EXTRA_%d", i)},
			})
			reg.Validate()
		}
	}()

	wg.Wait()

	// All registrations visible afterwards.
	if got, _ := reg.Find(Query{Category: CategorySensor, Parameter: "EXTRA_19"}); got == nil {
		t.Fatal("rule registered during concurrent lookups must be visible")
	}
}
