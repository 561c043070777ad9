package catalog

import "github.com/hausmatik/entity-core/internal/description"

func binarySensorRules() []*description.Rule {
	emergency := binarySensor("EMERGENCY_OPERATION", description.DeviceClassSafety)
	emergency.EnabledByDefault = false

	dutyCycle := diagnosticBinarySensor("DUTY_CYCLE", description.DeviceClassProblem)
	dutyCycle.Icon = "mdi:radio-tower"

	return []*description.Rule{
		// Safety and alarm states.
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"ALARMSTATE"},
			Description: binarySensor("ALARMSTATE", description.DeviceClassSafety),
		},
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"ACOUSTIC_ALARM_ACTIVE"},
			Description: binarySensor("ACOUSTIC_ALARM_ACTIVE", description.DeviceClassSafety),
		},
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"OPTICAL_ALARM_ACTIVE"},
			Description: binarySensor("OPTICAL_ALARM_ACTIVE", description.DeviceClassSafety),
		},
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"EMERGENCY_OPERATION"},
			Description: emergency,
		},
		// Problem diagnostics.
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"BLOCKED_PERMANENT", "BLOCKED_TEMPORARY"},
			Description: diagnosticBinarySensor("BLOCKED", description.DeviceClassProblem),
		},
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"DUTYCYCLE", "DUTY_CYCLE"},
			Description: dutyCycle,
		},
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"ERROR_JAMMED"},
			Description: diagnosticBinarySensor("ERROR_JAMMED", description.DeviceClassProblem),
		},
		// Motion and presence.
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"MOTION"},
			Description: binarySensor("MOTION", description.DeviceClassMotion),
		},
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"PRESENCE_DETECTION_STATE"},
			Description: binarySensor("PRESENCE_DETECTION_STATE", description.DeviceClassMotion),
		},
		// Window/door contacts.
		{
			Category:    description.CategoryBinarySensor,
			Parameters:  []string{"WINDOW_STATE"},
			Description: binarySensor("WINDOW_STATE", description.DeviceClassWindow),
		},
	}
}
