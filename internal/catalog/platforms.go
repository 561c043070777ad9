package catalog

import "github.com/hausmatik/entity-core/internal/description"

func switchRules() []*description.Rule {
	inhibit := switchDescription("INHIBIT", description.DeviceClassSwitch)
	inhibit.EnabledByDefault = false

	detectionActive := switchDescription("MOTION_DETECTION_ACTIVE", description.DeviceClassSwitch)
	detectionActive.EntityCategory = description.EntityCategoryConfig
	detectionActive.EnabledByDefault = false

	return []*description.Rule{
		// Pluggable switches are outlets.
		{
			Category:       description.CategorySwitch,
			DevicePrefixes: []string{"HmIP-PS"},
			Description:    switchDescription("OUTLET", description.DeviceClassOutlet),
		},
		{
			Category:    description.CategorySwitch,
			Parameters:  []string{"INHIBIT"},
			Description: inhibit,
		},
		{
			Category:    description.CategorySwitch,
			Parameters:  []string{"MOTION_DETECTION_ACTIVE", "PRESENCE_DETECTION_ACTIVE"},
			Description: detectionActive,
		},
	}
}

func coverRules() []*description.Rule {
	return []*description.Rule{
		{
			Category:       description.CategoryCover,
			DevicePrefixes: []string{"HmIP-BBL", "HmIP-FBL", "HmIP-DRBLI4", "HmIPW-DRBL4"},
			Description:    deviceClassOnly("BLIND", description.DeviceClassBlind),
		},
		{
			Category:       description.CategoryCover,
			DevicePrefixes: []string{"HmIP-BROLL", "HmIP-FROLL", "HM-LC-Bl1PBU-FM"},
			Description:    deviceClassOnly("SHUTTER", description.DeviceClassShutter),
		},
		{
			Category:       description.CategoryCover,
			DevicePrefixes: []string{"HmIP-MOD-HO", "HmIP-MOD-TM"},
			Description:    deviceClassOnly("GARAGE-HO", description.DeviceClassGarage),
		},
		{
			Category:       description.CategoryCover,
			DevicePrefixes: []string{"HM-Sec-Win"},
			Description:    deviceClassOnly("HM-Sec-Win", description.DeviceClassWindow),
		},
	}
}

func lockRules() []*description.Rule {
	buttonLock := switchDescription("BUTTON_LOCK", "")
	buttonLock.EntityCategory = description.EntityCategoryConfig
	buttonLock.TranslationKey = "button_lock"

	return []*description.Rule{
		// Channel aggregates carrying the BUTTON_LOCK postfix behave as
		// a config lock, not a door lock.
		{
			Category:    description.CategoryLock,
			Postfix:     "BUTTON_LOCK",
			Description: buttonLock,
		},
	}
}

func hubRules() []*description.Rule {
	return []*description.Rule{
		// Backend program triggers.
		{
			Category:        description.CategoryHubButton,
			VarNameContains: "INSTALL_MODE_HMIP_BUTTON",
			Description:     hubButton("INSTALL_MODE_HMIP_BUTTON", "install_mode_hmip_button"),
		},
		{
			Category:        description.CategoryHubButton,
			VarNameContains: "INSTALL_MODE_BIDCOS_BUTTON",
			Description:     hubButton("INSTALL_MODE_BIDCOS_BUTTON", "install_mode_bidcos_button"),
		},
		// Backend system variables.
		{
			Category:        description.CategoryHubSensor,
			VarNameContains: "ALARM_MESSAGES",
			Description:     hubSensor("ALARM_MESSAGES", "alarm_messages"),
		},
		{
			Category:        description.CategoryHubSensor,
			VarNameContains: "SERVICE_MESSAGES",
			Description:     hubSensor("SERVICE_MESSAGES", "service_messages"),
		},
		{
			Category:        description.CategoryHubSensor,
			VarNameContains: "INBOX",
			Description:     hubSensor("INBOX", "inbox"),
		},
	}
}
