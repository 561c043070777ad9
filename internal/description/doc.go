// Package description resolves backend data point characteristics to the
// presentation metadata the host uses to render them.
//
// The engine is a rule-based classifier: an ordered table of matching
// rules, partitioned by category, evaluated highest-priority first, with
// a per-category default as the fallback and a bounded LRU cache over
// lookup outcomes.
//
// Architecture:
//
//	┌─────────────────────────────────────────────────────┐
//	│              Registry (registry.go)                  │
//	│  Register / RegisterAll / SetDefault / Find /        │
//	│  Validate behind a single mutex                      │
//	│  ┌────────────┐   ┌─────────────┐   ┌────────────┐  │
//	│  │ ruleIndex  │   │ Rule.matches │  │ resultCache│  │
//	│  │ (index.go) │   │  (rule.go)   │  │ (cache.go) │  │
//	│  └────────────┘   └─────────────┘   └────────────┘  │
//	└─────────────────────────────────────────────────────┘
//	           │
//	           ▼
//	  Materialize (materialize.go)
//	  personalizes the resolved description per data point
//
// # Key Types
//
//   - Rule: immutable (criteria, priority, description) triple
//   - Query: flattened per-lookup view of one data point
//   - Registry: thread-safe rule index + default table + result cache
//   - StaticDescription: shared, read-only rule payload
//   - FinalDescription: per-instance materialized copy
//
// # Lookup Semantics
//
// Find consults the cache, then scans the query's category partition in
// descending priority order (ties keep registration order) and returns
// the first match, falling back to the category default. "No match" is
// an ordinary outcome, cached like any other. Any registration clears
// the whole cache, so lookups never serve stale outcomes.
//
// # Thread Safety
//
// Registry is safe for concurrent use. Registration is expected only
// during start-up; the read path stays a cheap map-and-slice scan.
//
// # Usage
//
//	reg := description.NewRegistry(0)
//	reg.SetLogger(log)
//	reg.RegisterAll(catalog.AllRules())
//	reg.SetDefault(description.CategorySwitch, switchDefault)
//
//	desc, ok := reg.Find(dp.Query())
//	if ok {
//	    final := description.Materialize(dp, desc)
//	    // hand final to the host platform
//	}
package description
