package catalog

import "github.com/hausmatik/entity-core/internal/description"

// Switch-class devices that expose an internal temperature sensor; the
// reading is diagnostic there, not a room measurement.
var temperatureDiagnosticDevices = []string{
	"ELV-SH-BS",
	"HmIP-BS",
	"HmIP-DR",
	"HmIP-FS",
	"HmIP-MOD-OC8",
	"HmIP-PCB",
	"HmIP-PS",
	"HmIP-USB",
	"HmIPW-DR",
	"HmIPW-FIO",
}

// Devices where LEVEL is a valve position rather than a cover or dimmer
// level.
var thermostatDevices = []string{
	"HmIP-eTRV",
	"HmIP-HEATING",
	"HmIP-FALMOT-C12",
	"HmIPW-FALMOT-C12",
}

func temperatureSensorRules() []*description.Rule {
	dewPoint := measurementSensor("DEW_POINT", description.DeviceClassTemperature, unitCelsius)
	dewPoint.TranslationKey = "dew_point"
	dewPoint.EnabledByDefault = false

	dewPointSpread := measurementSensor("DEW_POINT_SPREAD", description.DeviceClassTemperature, unitKelvin)
	dewPointSpread.EnabledByDefault = false

	return []*description.Rule{
		// Temperature as diagnostic on switch devices; overrides the
		// generic rule via priority.
		{
			Category:       description.CategorySensor,
			Parameters:     []string{"ACTUAL_TEMPERATURE"},
			DevicePrefixes: temperatureDiagnosticDevices,
			Priority:       10,
			Description:    diagnosticSensor("ACTUAL_TEMPERATURE", description.DeviceClassTemperature, unitCelsius),
		},
		// Generic temperature.
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"ACTUAL_TEMPERATURE", "TEMPERATURE"},
			Description: measurementSensor("TEMPERATURE", description.DeviceClassTemperature, unitCelsius),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"DEWPOINT", "DEW_POINT"},
			Description: dewPoint,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"DEW_POINT_SPREAD"},
			Description: dewPointSpread,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"HUMIDITY", "ACTUAL_HUMIDITY"},
			Description: measurementSensor("HUMIDITY", description.DeviceClassHumidity, unitPercent),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"ILLUMINATION", "AVERAGE_ILLUMINATION", "CURRENT_ILLUMINATION"},
			Description: measurementSensor("ILLUMINATION", description.DeviceClassIlluminance, unitLux),
		},
	}
}

func batterySensorRules() []*description.Rule {
	operatingVoltage := diagnosticSensor("OPERATING_VOLTAGE", description.DeviceClassVoltage, unitVolt)
	operatingVoltage.DisplayPrecision = 1

	return []*description.Rule{
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"BATTERY_STATE", "OPERATING_VOLTAGE"},
			Description: operatingVoltage,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"OPERATING_VOLTAGE_LEVEL"},
			Description: diagnosticSensor("OPERATING_VOLTAGE_LEVEL", description.DeviceClassBattery, unitPercent),
		},
	}
}

func energySensorRules() []*description.Rule {
	return []*description.Rule{
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"POWER", "IEC_POWER"},
			Description: measurementSensor("POWER", description.DeviceClassPower, unitWatt),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"ENERGY_COUNTER", "ENERGY_COUNTER_FEED_IN"},
			Description: totalIncreasingSensor("ENERGY_COUNTER", description.DeviceClassEnergy, unitWattHour),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"IEC_ENERGY_COUNTER"},
			Description: totalIncreasingSensor("IEC_ENERGY_COUNTER", description.DeviceClassEnergy, unitKWh),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"CURRENT"},
			Description: measurementSensor("CURRENT", description.DeviceClassCurrent, unitAmpere),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"VOLTAGE"},
			Description: measurementSensor("VOLTAGE", description.DeviceClassVoltage, unitVolt),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"FREQUENCY"},
			Description: measurementSensor("FREQUENCY", description.DeviceClassFrequency, unitHertz),
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"WATER_VOLUME", "WATER_VOLUME_SINCE_OPEN"},
			Description: totalSensor("WATER_VOLUME", description.DeviceClassWater, unitLiter),
		},
	}
}

func levelSensorRules() []*description.Rule {
	valveLevel := measurementSensor("LEVEL", "", unitPercent)
	valveLevel.TranslationKey = "pipe_level"

	return []*description.Rule{
		// Thermostat valve position; beats the generic LEVEL rule.
		{
			Category:       description.CategorySensor,
			Parameters:     []string{"LEVEL"},
			DevicePrefixes: thermostatDevices,
			Priority:       10,
			Description:    valveLevel,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"LEVEL"},
			Unit:        unitPercent,
			Description: measurementSensor("LEVEL_PERCENT", "", unitPercent),
		},
	}
}

func miscSensorRules() []*description.Rule {
	rssi := diagnosticSensor("RSSI", description.DeviceClassSignalStrength, unitDBM)

	carrierSense := diagnosticSensor("CARRIER_SENSE_LEVEL", "", unitPercent)
	carrierSense.Icon = "mdi:radio-tower"
	carrierSense.EnabledByDefault = true

	dutyCycle := diagnosticSensor("DUTY_CYCLE_LEVEL", "", unitPercent)
	dutyCycle.Icon = "mdi:radio-tower"
	dutyCycle.EnabledByDefault = true

	ipAddress := simpleSensor("IP_ADDRESS")
	ipAddress.EntityCategory = description.EntityCategoryDiagnostic
	ipAddress.Icon = "mdi:ip-network"

	rainCounter := totalIncreasingSensor("RAIN_COUNTER", "", unitMillimeter)
	rainCounter.Icon = "mdi:weather-rainy"

	return []*description.Rule{
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"RSSI_DEVICE", "RSSI_PEER"},
			Description: rssi,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"CARRIER_SENSE_LEVEL"},
			Description: carrierSense,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"DUTY_CYCLE_LEVEL"},
			Description: dutyCycle,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"IP_ADDRESS"},
			Description: ipAddress,
		},
		{
			Category:    description.CategorySensor,
			Parameters:  []string{"RAIN_COUNTER"},
			Description: rainCounter,
		},
	}
}

// sensorRules flattens all sensor tables in registration order.
func sensorRules() []*description.Rule {
	var rules []*description.Rule
	rules = append(rules, temperatureSensorRules()...)
	rules = append(rules, batterySensorRules()...)
	rules = append(rules, energySensorRules()...)
	rules = append(rules, levelSensorRules()...)
	rules = append(rules, miscSensorRules()...)
	return rules
}
