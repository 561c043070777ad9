// Package catalog ships the static entity description rule table: the
// domain content that maps backend data point characteristics to
// presentation metadata.
//
// The tables are grouped per platform (sensors.go, binary_sensors.go,
// switches.go, ...) and flattened by AllRules. Bootstrap populates a
// description.Registry with the full table and per-category defaults;
// it is called once at process start-up, before any lookup.
//
// The catalog is data, not logic: rule evaluation lives entirely in the
// description package.
package catalog
