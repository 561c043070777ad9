package catalog

import "github.com/hausmatik/entity-core/internal/description"

// AllRules returns the full static rule table in registration order.
// Order matters: it is the tie-break among rules of equal priority.
func AllRules() []*description.Rule {
	var rules []*description.Rule
	rules = append(rules, sensorRules()...)
	rules = append(rules, binarySensorRules()...)
	rules = append(rules, switchRules()...)
	rules = append(rules, coverRules()...)
	rules = append(rules, lockRules()...)
	rules = append(rules, hubRules()...)
	return rules
}

// Defaults returns the per-category fallback descriptions used when no
// rule matches.
func Defaults() map[description.Category]*description.StaticDescription {
	return map[description.Category]*description.StaticDescription{
		description.CategoryButton: {
			Key:            "button_default",
			TranslationKey: "button_press",
		},
		description.CategorySwitch: {
			Key:              "switch_default",
			DeviceClass:      description.DeviceClassSwitch,
			EnabledByDefault: true,
		},
		description.CategorySelect: {
			Key:              "select_default",
			EntityCategory:   description.EntityCategoryConfig,
			EnabledByDefault: true,
		},
		description.CategoryHubButton: {
			Key:              "hub_button_default",
			TranslationKey:   "button_press",
			EnabledByDefault: true,
		},
		description.CategoryHubSwitch: {
			Key:              "hub_switch_default",
			DeviceClass:      description.DeviceClassSwitch,
			EnabledByDefault: true,
		},
	}
}

// Bootstrap populates the registry with the full table and defaults.
// When validate is set it also runs rule table validation and reports
// data-quality warnings through the logger. Call once at start-up,
// before any lookup is reachable.
func Bootstrap(reg *description.Registry, log description.Logger, validate bool) {
	reg.RegisterAll(AllRules())

	for category, desc := range Defaults() {
		reg.SetDefault(category, desc)
	}

	if validate {
		for _, warning := range reg.Validate() {
			log.Warn("description rule validation", "warning", warning)
		}
	}
}
