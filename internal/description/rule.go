package description

import "strings"

// Rule maps data point characteristics to a static description.
//
// Rules are matched per category in priority order; the first matching
// rule wins. All specified criteria must match (AND logic); criteria left
// at their zero value never constrain the outcome.
//
// A Rule is immutable after registration. The Description payload is
// shared by every data point the rule resolves, so callers must treat it
// as read-only.
type Rule struct {
	// Category is mandatory and is the exact-match partitioning key.
	Category Category

	// Parameters accepts any of the listed parameter names,
	// case-insensitively.
	Parameters []string

	// DevicePrefixes accepts any device model starting with one of the
	// listed prefixes. Model strings are exact vendor identifiers, so
	// matching is case-sensitive.
	DevicePrefixes []string

	// Unit must equal the query's unit exactly when set.
	Unit string

	// Postfix must equal the query's name postfix, case-insensitively,
	// when set.
	Postfix string

	// VarNameContains must appear in the query's variable name,
	// case-insensitively, when set.
	VarNameContains string

	// Priority orders rules within a category; higher is checked first.
	// Ties keep registration order.
	Priority int

	// Description is returned verbatim when the rule matches.
	Description *StaticDescription
}

// matches reports whether the rule accepts the query. Pure function:
// criteria absent on the rule are vacuously satisfied, and query fields
// absent (empty) fail any criterion that requires them.
func (r *Rule) matches(q Query) bool {
	if r.Category != q.Category {
		return false
	}

	if len(r.Parameters) > 0 {
		if q.Parameter == "" {
			return false
		}
		found := false
		for _, p := range r.Parameters {
			if strings.EqualFold(p, q.Parameter) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(r.DevicePrefixes) > 0 {
		if q.DeviceModel == "" {
			return false
		}
		found := false
		for _, prefix := range r.DevicePrefixes {
			if strings.HasPrefix(q.DeviceModel, prefix) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if r.Unit != "" && q.Unit != r.Unit {
		return false
	}

	if r.Postfix != "" {
		if q.Postfix == "" || !strings.EqualFold(q.Postfix, r.Postfix) {
			return false
		}
	}

	if r.VarNameContains != "" {
		if q.VarName == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(q.VarName), strings.ToLower(r.VarNameContains)) {
			return false
		}
	}

	return true
}
