package catalog

import "github.com/hausmatik/entity-core/internal/description"

// Units of measurement used by the shipped tables.
const (
	unitCelsius    = "°C"
	unitKelvin     = "K"
	unitPercent    = "%"
	unitLux        = "lx"
	unitWatt       = "W"
	unitWattHour   = "Wh"
	unitKWh        = "kWh"
	unitVolt       = "V"
	unitAmpere     = "A"
	unitHertz      = "Hz"
	unitDBM        = "dBm"
	unitLiter      = "l"
	unitMillimeter = "mm"
)

// The factories below pin the field combinations the platforms rely on,
// so individual rules only state what is specific to them. Call sites
// adjust secondary fields (translation key, icon, precision) on the
// returned value before it is registered; descriptions are shared and
// read-only after that.

// measurementSensor describes a live measured value.
func measurementSensor(key string, class description.DeviceClass, unit string) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		DeviceClass:      class,
		StateClass:       description.StateClassMeasurement,
		Unit:             unit,
		EnabledByDefault: true,
		NameSource:       description.NameSourceParameter,
	}
}

// diagnosticSensor describes an internal/diagnostic measurement, disabled
// by default.
func diagnosticSensor(key string, class description.DeviceClass, unit string) *description.StaticDescription {
	return &description.StaticDescription{
		Key:            key,
		DeviceClass:    class,
		StateClass:     description.StateClassMeasurement,
		Unit:           unit,
		EntityCategory: description.EntityCategoryDiagnostic,
		NameSource:     description.NameSourceParameter,
	}
}

// totalIncreasingSensor describes a monotonically increasing counter,
// e.g. energy meters.
func totalIncreasingSensor(key string, class description.DeviceClass, unit string) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		DeviceClass:      class,
		StateClass:       description.StateClassTotalIncreasing,
		Unit:             unit,
		EnabledByDefault: true,
		NameSource:       description.NameSourceParameter,
	}
}

// totalSensor describes an accumulating value that can also decrease or
// reset, e.g. water volume since a valve opened.
func totalSensor(key string, class description.DeviceClass, unit string) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		DeviceClass:      class,
		StateClass:       description.StateClassTotal,
		Unit:             unit,
		EnabledByDefault: true,
		NameSource:       description.NameSourceParameter,
	}
}

// simpleSensor describes a sensor without a state class.
func simpleSensor(key string) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		EnabledByDefault: true,
		NameSource:       description.NameSourceParameter,
	}
}

// binarySensor describes a two-state sensor.
func binarySensor(key string, class description.DeviceClass) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		DeviceClass:      class,
		EnabledByDefault: true,
		NameSource:       description.NameSourceParameter,
	}
}

// diagnosticBinarySensor describes a two-state diagnostic, disabled by
// default.
func diagnosticBinarySensor(key string, class description.DeviceClass) *description.StaticDescription {
	return &description.StaticDescription{
		Key:            key,
		DeviceClass:    class,
		EntityCategory: description.EntityCategoryDiagnostic,
		NameSource:     description.NameSourceParameter,
	}
}

// switchDescription describes a controllable on/off data point.
func switchDescription(key string, class description.DeviceClass) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		DeviceClass:      class,
		EnabledByDefault: true,
		NameSource:       description.NameSourceParameter,
	}
}

// deviceClassOnly describes an aggregate rendered purely by its device
// class (covers, locks); the materializer leaves the name unset.
func deviceClassOnly(key string, class description.DeviceClass) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		DeviceClass:      class,
		EnabledByDefault: true,
		NameSource:       description.NameSourceDeviceClass,
	}
}

// hubSensor describes a backend system variable.
func hubSensor(key, translationKey string) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		StateClass:       description.StateClassMeasurement,
		TranslationKey:   translationKey,
		EnabledByDefault: true,
	}
}

// hubButton describes a backend program trigger.
func hubButton(key, translationKey string) *description.StaticDescription {
	return &description.StaticDescription{
		Key:              key,
		TranslationKey:   translationKey,
		EnabledByDefault: true,
	}
}
