package description

import "strings"

// DataPointKind tags the flavour of a data point. The host layer flattens
// its runtime object model into one of these before calling the engine,
// so the engine never inspects data point types itself.
type DataPointKind string

// DataPointKind constants.
const (
	// KindGeneric covers plain device channel parameters, including
	// calculated ones. Queries carry parameter, device model and unit.
	KindGeneric DataPointKind = "generic"

	// KindCustom covers channel aggregates (climate groups, covers,
	// locks). Queries carry device model and name postfix.
	KindCustom DataPointKind = "custom"

	// KindHub covers backend system variables and programs. Queries
	// carry the variable name.
	KindHub DataPointKind = "hub"
)

// DataPoint is the flattened, engine-facing view of one backend data
// point: the fields a lookup and a materialization need, nothing more.
// Constructed once by the host layer per discovered data point.
type DataPoint struct {
	Kind     DataPointKind
	Category Category

	// Name is the computed display name; for hub data points it is the
	// variable name.
	Name string

	// Parameter is the protocol parameter name (generic kind only).
	Parameter string

	// DeviceModel is the vendor model identifier of the owning device.
	DeviceModel string

	// Unit is the backend-reported unit of measurement, when any.
	Unit string

	// Postfix is the data point name postfix (custom kind only).
	Postfix string

	// EnabledDefault reports whether the backend considers the data
	// point individually enabled.
	EnabledDefault bool
}

// Query flattens the data point into a lookup query according to its
// kind. Fields irrelevant to the kind stay absent so they never satisfy
// a rule criterion by accident.
func (dp DataPoint) Query() Query {
	q := Query{Category: dp.Category}

	switch dp.Kind {
	case KindGeneric:
		q.Parameter = dp.Parameter
		q.DeviceModel = dp.DeviceModel
		q.Unit = dp.Unit
	case KindCustom:
		q.DeviceModel = dp.DeviceModel
		q.Postfix = dp.Postfix
	case KindHub:
		q.VarName = dp.Name
	}

	return q
}

// FinalDescription is the per-instance description handed to the host: a
// copy of the resolved static description personalized with computed
// name, translation key and enabled state. Unlike the static description
// it is exclusively owned by the caller.
type FinalDescription struct {
	StaticDescription

	// Name is the display name. Nil means "leave unset" so the host
	// falls back to device-class presentation.
	Name *string

	// HasEntityName marks the name as entity-scoped for the host's
	// naming scheme.
	HasEntityName bool
}

// Materialize overlays per-instance fields on a resolved static
// description and returns a fresh value; the shared static description is
// never mutated.
//
// Name and translation key follow this precedence:
//  1. A translation key on the static description wins; the data point's
//     display name is kept unchanged.
//  2. Otherwise the key is derived from the data point's identifying
//     string lower-cased: the parameter name for generic data points, the
//     display name for custom and hub ones. A NameSourceDeviceClass
//     marker instead leaves both name and key unset so the host renders
//     the device class.
//
// EnabledByDefault is forced to false when the data point reports itself
// individually disabled, regardless of the static description's flag.
func Materialize(dp DataPoint, static *StaticDescription) FinalDescription {
	final := FinalDescription{
		StaticDescription: *static,
		HasEntityName:     true,
	}

	name, translationKey := nameAndTranslationKey(dp, static)
	final.Name = name
	final.TranslationKey = translationKey

	if !dp.EnabledDefault {
		final.EnabledByDefault = false
	}

	return final
}

func nameAndTranslationKey(dp DataPoint, static *StaticDescription) (*string, string) {
	name := dp.Name

	if static.TranslationKey != "" {
		return &name, static.TranslationKey
	}

	if dp.Kind == KindGeneric {
		switch static.NameSource {
		case NameSourceEntityName:
			return &name, strings.ToLower(name)
		case NameSourceDeviceClass:
			return nil, ""
		}
		return &name, strings.ToLower(dp.Parameter)
	}

	return &name, strings.ToLower(name)
}
