package description

// Category identifies the platform/kind partition a rule and a query both
// belong to. It mirrors the backend's data point categories and is the
// mandatory partitioning key for every lookup.
type Category string

// Category constants.
const (
	CategoryBinarySensor Category = "binary_sensor"
	CategoryButton       Category = "button"
	CategoryClimate      Category = "climate"
	CategoryCover        Category = "cover"
	CategoryLight        Category = "light"
	CategoryLock         Category = "lock"
	CategoryNumber       Category = "number"
	CategorySelect       Category = "select"
	CategorySensor       Category = "sensor"
	CategorySiren        Category = "siren"
	CategorySwitch       Category = "switch"
	CategoryValve        Category = "valve"

	// Hub categories cover data points sourced from the backend itself
	// (system variables and programs) rather than a device channel.
	CategoryHubBinarySensor Category = "hub_binary_sensor"
	CategoryHubButton       Category = "hub_button"
	CategoryHubSensor       Category = "hub_sensor"
	CategoryHubSwitch       Category = "hub_switch"
)

// DeviceClass is the host-side presentation class of a data point
// (temperature, power, motion, ...). Opaque to the engine; carried
// through on the description payload.
type DeviceClass string

// DeviceClass constants used by the shipped catalog.
const (
	DeviceClassBattery        DeviceClass = "battery"
	DeviceClassBlind          DeviceClass = "blind"
	DeviceClassCurrent        DeviceClass = "current"
	DeviceClassEnergy         DeviceClass = "energy"
	DeviceClassFrequency      DeviceClass = "frequency"
	DeviceClassGarage         DeviceClass = "garage"
	DeviceClassHumidity       DeviceClass = "humidity"
	DeviceClassIlluminance    DeviceClass = "illuminance"
	DeviceClassMotion         DeviceClass = "motion"
	DeviceClassOutlet         DeviceClass = "outlet"
	DeviceClassPower          DeviceClass = "power"
	DeviceClassProblem        DeviceClass = "problem"
	DeviceClassSafety         DeviceClass = "safety"
	DeviceClassShutter        DeviceClass = "shutter"
	DeviceClassSignalStrength DeviceClass = "signal_strength"
	DeviceClassSwitch         DeviceClass = "switch"
	DeviceClassTemperature    DeviceClass = "temperature"
	DeviceClassVoltage        DeviceClass = "voltage"
	DeviceClassWater          DeviceClass = "water"
	DeviceClassWindow         DeviceClass = "window"
)

// StateClass describes how the host should accumulate a sensor's values.
type StateClass string

// StateClass constants.
const (
	StateClassMeasurement     StateClass = "measurement"
	StateClassTotal           StateClass = "total"
	StateClassTotalIncreasing StateClass = "total_increasing"
)

// EntityCategory marks a data point as configuration or diagnostic
// rather than a primary entity.
type EntityCategory string

// EntityCategory constants.
const (
	EntityCategoryConfig     EntityCategory = "config"
	EntityCategoryDiagnostic EntityCategory = "diagnostic"
)

// NameSource defines where the materializer derives an entity's display
// name and translation key from when the static description does not
// carry a translation key of its own.
type NameSource string

// NameSource constants.
const (
	// NameSourceParameter derives the translation key from the data
	// point's parameter name. This is the default.
	NameSourceParameter NameSource = "parameter"

	// NameSourceEntityName derives the translation key from the data
	// point's full display name.
	NameSourceEntityName NameSource = "entity_name"

	// NameSourceDeviceClass leaves the name unset so the host renders
	// the device class instead; no translation key is produced.
	NameSourceDeviceClass NameSource = "device_class"
)

// StaticDescription is a rule's payload: the presentation metadata shared
// read-only by every data point that resolves to the same rule. The
// engine returns it verbatim on match and never inspects it beyond Key
// (used by Validate).
type StaticDescription struct {
	// Key identifies the description within its category.
	Key string

	DeviceClass    DeviceClass
	StateClass     StateClass
	EntityCategory EntityCategory

	// Unit overrides the backend-reported unit of measurement.
	Unit string

	// TranslationKey, when set, pins the host-side translation and
	// short-circuits name derivation in the materializer.
	TranslationKey string

	Icon string

	// DisplayPrecision suggests the number of decimals to render.
	// Zero means no suggestion.
	DisplayPrecision int

	// Multiplier rescales raw backend values (e.g. 0.01 for values
	// reported in hundredths). Zero means no scaling.
	Multiplier float64

	// EnabledByDefault controls whether the host enables the entity on
	// first discovery. Note the inverted zero value: descriptions are
	// enabled unless this is explicitly false, so the catalog factories
	// set it rather than relying on the zero value.
	EnabledByDefault bool

	// NameSource steers the materializer's name/translation derivation.
	// Empty is treated as NameSourceParameter.
	NameSource NameSource
}

// Query carries the static characteristics of one data point for a single
// lookup. Category is mandatory; every other field is optional, with the
// empty string meaning "not present". Queries are transient values built
// fresh per lookup and never retained by the engine.
type Query struct {
	Category    Category
	Parameter   string
	DeviceModel string
	Unit        string
	Postfix     string
	VarName     string
}
