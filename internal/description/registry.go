package description

import (
	"fmt"
	"slices"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry resolves data point characteristics to static descriptions.
//
// It composes the rule index, the matcher, and a bounded LRU result
// cache: Find consults the cache first and on a miss scans the query's
// category partition in priority order, falling back to the category
// default. Every registration clears the cache wholesale, so a lookup
// after a registration always reflects the new rule set.
//
// Construct a Registry explicitly and hand it to whatever needs it;
// there is no package-level instance.
//
// All public methods are safe for concurrent use. A single mutex guards
// index, defaults, and cache together: Find updates LRU recency on every
// hit, so every path writes and a read-write lock would buy nothing.
type Registry struct {
	mu       sync.Mutex
	index    *ruleIndex
	defaults map[Category]*StaticDescription
	cache    *resultCache
	logger   Logger
}

// NewRegistry creates an empty registry. cacheCapacity bounds the result
// cache; zero or negative selects DefaultCacheCapacity.
func NewRegistry(cacheCapacity int) *Registry {
	return &Registry{
		index:    newRuleIndex(),
		defaults: make(map[Category]*StaticDescription),
		cache:    newResultCache(cacheCapacity),
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register inserts a single rule. The rule takes effect on the next
// lookup; the result cache is cleared so no stale outcome survives.
func (r *Registry) Register(rule *Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index.add(rule)
	r.cache.clear()
}

// RegisterAll inserts rules in order, clearing the result cache once.
// Registration order is significant: it is the tie-break among rules of
// equal priority.
func (r *Registry) RegisterAll(rules []*Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rule := range rules {
		r.index.add(rule)
	}
	r.cache.clear()
	r.logger.Debug("rules registered", "count", len(rules), "total", r.index.size())
}

// SetDefault sets the fallback description returned when no rule in the
// category matches. The cache is cleared conservatively; defaults are
// only expected to change during start-up.
func (r *Registry) SetDefault(category Category, desc *StaticDescription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults[category] = desc
	r.cache.clear()
}

// Find resolves the best matching static description for the query.
//
// It returns the description of the highest-priority matching rule in
// the query's category, the category default when no rule matches, or
// (nil, false) when neither exists. No-match is an ordinary outcome, not
// an error, and is cached like any other.
//
// The query's Category is a caller precondition; Find panics when it is
// empty, since that indicates a bug at the call site rather than a data
// condition.
func (r *Registry) Find(q Query) (*StaticDescription, bool) {
	if q.Category == "" {
		panic("description: Find called without category")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if desc, ok := r.cache.get(q); ok {
		return desc, desc != nil
	}

	r.index.ensureSorted()

	desc := r.lookup(q)
	r.cache.put(q, desc)
	return desc, desc != nil
}

// lookup performs the uncached scan. Callers hold r.mu.
func (r *Registry) lookup(q Query) *StaticDescription {
	for _, rule := range r.index.rulesFor(q.Category) {
		if rule.matches(q) {
			return rule.Description
		}
	}
	return r.defaults[q.Category]
}

// Validate scans all registered rules for description keys that repeat
// within the same category and returns one warning per repeated
// occurrence. Diagnostic only: duplicates are a data-quality smell, not
// an error, because lookups deterministically prefer the
// highest-priority, first-registered rule. Intended to run once at
// start-up when verbose diagnostics are enabled.
func (r *Registry) Validate() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories := make([]Category, 0, len(r.index.byCategory))
	for category := range r.index.byCategory {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	var warnings []string
	for _, category := range categories {
		rules := r.index.byCategory[category]
		seen := make(map[string]bool, len(rules))
		for _, rule := range rules {
			key := rule.Description.Key
			if seen[key] {
				warnings = append(warnings,
					fmt.Sprintf("duplicate description key %q in category %s", key, category))
			}
			seen[key] = true
		}
	}
	return warnings
}

// Stats returns the number of registered rules per category.
func (r *Registry) Stats() map[Category]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := make(map[Category]int, len(r.index.byCategory))
	for category, rules := range r.index.byCategory {
		stats[category] = len(rules)
	}
	return stats
}

// CachedResults returns the number of memoized lookup outcomes.
func (r *Registry) CachedResults() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.len()
}
