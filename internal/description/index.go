package description

import "sort"

// ruleIndex partitions rules by category and keeps each partition sorted
// by descending priority. Sorting is deferred: add marks the index dirty
// and ensureSorted re-sorts lazily before the next lookup.
//
// ruleIndex is not safe for concurrent use; the Registry serialises
// access to it.
type ruleIndex struct {
	byCategory map[Category][]*Rule
	dirty      bool
}

func newRuleIndex() *ruleIndex {
	return &ruleIndex{
		byCategory: make(map[Category][]*Rule),
	}
}

// add appends the rule to its category bucket. Rules are never removed or
// mutated after add.
func (ix *ruleIndex) add(rule *Rule) {
	ix.byCategory[rule.Category] = append(ix.byCategory[rule.Category], rule)
	ix.dirty = true
}

// rulesFor returns the category's rules in match order. Callers must have
// invoked ensureSorted since the last add.
func (ix *ruleIndex) rulesFor(category Category) []*Rule {
	return ix.byCategory[category]
}

// ensureSorted re-sorts every category bucket by descending priority.
// The sort is stable, so rules of equal priority keep registration order
// (first registered wins). No-op when the index is clean.
func (ix *ruleIndex) ensureSorted() {
	if !ix.dirty {
		return
	}
	for _, rules := range ix.byCategory {
		sort.SliceStable(rules, func(i, j int) bool {
			return rules[i].Priority > rules[j].Priority
		})
	}
	ix.dirty = false
}

// size returns the total number of registered rules.
func (ix *ruleIndex) size() int {
	n := 0
	for _, rules := range ix.byCategory {
		n += len(rules)
	}
	return n
}
