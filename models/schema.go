package models

import "fmt"

// Field kinds exposed through the schema endpoint.
const (
	KindInteger = "integer"
	KindBoolean = "boolean"
	KindEnum    = "enum"
)

// QuantityField describes one integer supply field: its wire name, display
// label, allowed range and default. The accessor binds the spec to the
// concrete struct field so defaulting, clamping and aggregation all walk the
// same table.
type QuantityField struct {
	Name    string
	Label   string
	Min     int
	Max     int
	Default int

	value func(*ChecklistRecord) *int
}

// TaskField describes one boolean task field.
type TaskField struct {
	Name  string
	Label string

	value func(*ChecklistRecord) *bool
}

// EnumField describes one enumerated status field.
type EnumField struct {
	Name    string
	Label   string
	Allowed []string
	Default string

	value func(*ChecklistRecord) *string
}

// QuantityFields lists every supply-quantity field in presentation order.
var QuantityFields = []QuantityField{
	{Name: "bathTowels", Label: "Bath Towels", Min: 0, Max: 4, Default: 4, value: func(r *ChecklistRecord) *int { return &r.BathTowels }},
	{Name: "handTowels", Label: "Hand Towels", Min: 0, Max: 2, Default: 2, value: func(r *ChecklistRecord) *int { return &r.HandTowels }},
	{Name: "washCloths", Label: "Wash Cloths", Min: 0, Max: 4, Default: 4, value: func(r *ChecklistRecord) *int { return &r.WashCloths }},
	{Name: "makeupCloths", Label: "Makeup Cloths", Min: 0, Max: 2, Default: 2, value: func(r *ChecklistRecord) *int { return &r.MakeupCloths }},
	{Name: "bathMat", Label: "Bath Mat", Min: 0, Max: 1, Default: 1, value: func(r *ChecklistRecord) *int { return &r.BathMat }},
	{Name: "shampoo", Label: "Shampoo", Min: 0, Max: 1, Default: 1, value: func(r *ChecklistRecord) *int { return &r.Shampoo }},
	{Name: "conditioner", Label: "Conditioner", Min: 0, Max: 1, Default: 1, value: func(r *ChecklistRecord) *int { return &r.Conditioner }},
	{Name: "bodyWash", Label: "Body Wash", Min: 0, Max: 1, Default: 1, value: func(r *ChecklistRecord) *int { return &r.BodyWash }},
	{Name: "bodyLotion", Label: "Body Lotion", Min: 0, Max: 1, Default: 1, value: func(r *ChecklistRecord) *int { return &r.BodyLotion }},
	{Name: "barSoap", Label: "Bar Soap", Min: 0, Max: 1, Default: 1, value: func(r *ChecklistRecord) *int { return &r.BarSoap }},
	{Name: "soapDispenser", Label: "Soap Dispenser", Min: 0, Max: 1, Default: 0, value: func(r *ChecklistRecord) *int { return &r.SoapDispenser }},
	{Name: "toiletPaper", Label: "Toilet Paper", Min: 0, Max: 2, Default: 2, value: func(r *ChecklistRecord) *int { return &r.ToiletPaper }},
	{Name: "bathroomCups", Label: "Paper Cups, Bathroom", Min: 0, Max: 7, Default: 0, value: func(r *ChecklistRecord) *int { return &r.BathroomCups }},
	{Name: "kleenex", Label: "Kleenex", Min: 0, Max: 1, Default: 1, value: func(r *ChecklistRecord) *int { return &r.Kleenex }},
	{Name: "pen", Label: "Pen for Guestbook", Min: 0, Max: 1, Default: 0, value: func(r *ChecklistRecord) *int { return &r.Pen }},
	{Name: "bathCheckLights", Label: "Light Bulbs", Min: 0, Max: 5, Default: 0, value: func(r *ChecklistRecord) *int { return &r.BathCheckLights }},
	{Name: "waterBottles", Label: "Water Bottles", Min: 0, Max: 4, Default: 4, value: func(r *ChecklistRecord) *int { return &r.WaterBottles }},
	{Name: "coffeePods", Label: "Coffee Pods", Min: 0, Max: 12, Default: 0, value: func(r *ChecklistRecord) *int { return &r.CoffeePods }},
	{Name: "coffeeSweeteners", Label: "Coffee Sweeteners", Min: 0, Max: 12, Default: 0, value: func(r *ChecklistRecord) *int { return &r.CoffeeSweeteners }},
	{Name: "coffeeCreamer", Label: "Coffee Creamer", Min: 0, Max: 12, Default: 0, value: func(r *ChecklistRecord) *int { return &r.CoffeeCreamer }},
	{Name: "coffeeCupsCeramic", Label: "Coffee Cups, Ceramic", Min: 0, Max: 4, Default: 0, value: func(r *ChecklistRecord) *int { return &r.CoffeeCupsCeramic }},
	{Name: "coffeeCupsPaper", Label: "Coffee Cups, Paper", Min: 0, Max: 4, Default: 4, value: func(r *ChecklistRecord) *int { return &r.CoffeeCupsPaper }},
	{Name: "coffeeCupLids", Label: "Coffee Cup Lids", Min: 0, Max: 4, Default: 4, value: func(r *ChecklistRecord) *int { return &r.CoffeeCupLids }},
	{Name: "coffeeStirrers", Label: "Coffee Stirrers", Min: 0, Max: 12, Default: 0, value: func(r *ChecklistRecord) *int { return &r.CoffeeStirrers }},
	{Name: "emptyRelineTrashCans", Label: "Trash Bags", Min: 0, Max: 2, Default: 2, value: func(r *ChecklistRecord) *int { return &r.EmptyRelineTrashCans }},
	{Name: "paperTowels", Label: "Paper Towels", Min: 0, Max: 1, Default: 0, value: func(r *ChecklistRecord) *int { return &r.PaperTowels }},
	{Name: "dishSoap", Label: "Dish Soap", Min: 0, Max: 1, Default: 0, value: func(r *ChecklistRecord) *int { return &r.DishSoap }},
	{Name: "lockBattery", Label: "Lock Battery (AA)", Min: 0, Max: 4, Default: 0, value: func(r *ChecklistRecord) *int { return &r.LockBattery }},
	{Name: "smokeAlarmBattery", Label: "Smoke Alarm Battery (AA)", Min: 0, Max: 2, Default: 0, value: func(r *ChecklistRecord) *int { return &r.SmokeAlarmBattery }},
	{Name: "motionDetectorBattery", Label: "Motion Detector Battery (AA)", Min: 0, Max: 2, Default: 0, value: func(r *ChecklistRecord) *int { return &r.MotionDetectorBattery }},
	{Name: "doorSensorBattery", Label: "Door Sensor Battery (CR2032)", Min: 0, Max: 2, Default: 0, value: func(r *ChecklistRecord) *int { return &r.DoorSensorBattery }},
	{Name: "livingCheckLights", Label: "Living Check Lights", Min: 0, Max: 5, Default: 0, value: func(r *ChecklistRecord) *int { return &r.LivingCheckLights }},
}

// TaskFields lists every boolean task field.
var TaskFields = []TaskField{
	{Name: "clearDoorCodes", Label: "Clear Door Codes", value: func(r *ChecklistRecord) *bool { return &r.ClearDoorCodes }},
	{Name: "resetThermostats", Label: "Reset Thermostats", value: func(r *ChecklistRecord) *bool { return &r.ResetThermostats }},
	{Name: "checkUnderBedsSofa", Label: "Check Under Beds / Sofa", value: func(r *ChecklistRecord) *bool { return &r.CheckUnderBedsSofa }},
	{Name: "checkShower", Label: "Check Shower", value: func(r *ChecklistRecord) *bool { return &r.CheckShower }},
	{Name: "gatherTowels", Label: "Gather Towels", value: func(r *ChecklistRecord) *bool { return &r.GatherTowels }},
	{Name: "emptyCoffeeWater", Label: "Empty Coffee Water", value: func(r *ChecklistRecord) *bool { return &r.EmptyCoffeeWater }},
	{Name: "emptyCoffeePod", Label: "Empty Coffee Pod", value: func(r *ChecklistRecord) *bool { return &r.EmptyCoffeePod }},
	{Name: "emptyRefrigerator", Label: "Empty Refrigerator", value: func(r *ChecklistRecord) *bool { return &r.EmptyRefrigerator }},
	{Name: "emptyMicrowaveOven", Label: "Empty Microwave / Oven", value: func(r *ChecklistRecord) *bool { return &r.EmptyMicrowaveOven }},
	{Name: "tvRemoteUnderTV", Label: "TV Remote Under TV", value: func(r *ChecklistRecord) *bool { return &r.TVRemoteUnderTV }},
	{Name: "shakeRugs", Label: "Shake Rugs", value: func(r *ChecklistRecord) *bool { return &r.ShakeRugs }},
}

// EnumFields lists every enumerated status field.
var EnumFields = []EnumField{
	{
		Name: "cleanACFilter", Label: "Clean AC Filter",
		Allowed: []string{ACFilterNotNeeded, ACFilterDone},
		Default: ACFilterNotNeeded,
		value:   func(r *ChecklistRecord) *string { return &r.CleanACFilter },
	},
	{
		Name: "stripQueenBeds", Label: "Strip Queen Beds",
		Allowed: []string{StripNotNeeded, StripBundled, StripOK},
		Default: StripNotNeeded,
		value:   func(r *ChecklistRecord) *string { return &r.StripQueenBeds },
	},
	{
		Name: "stripKingBeds", Label: "Strip King Beds",
		Allowed: []string{StripNotNeeded, StripBundled, StripOK},
		Default: StripNotNeeded,
		value:   func(r *ChecklistRecord) *string { return &r.StripKingBeds },
	},
}

// ApplyDefaults fills zero-valued quantity fields and empty enum fields with
// their schema defaults. Intended for freshly created records.
func ApplyDefaults(rec *ChecklistRecord) {
	for _, f := range QuantityFields {
		if v := f.value(rec); *v == 0 {
			*v = f.Default
		}
	}
	for _, f := range EnumFields {
		if v := f.value(rec); *v == "" {
			*v = f.Default
		}
	}
}

// ClampQuantities forces every quantity field into its schema range.
func ClampQuantities(rec *ChecklistRecord) {
	for _, f := range QuantityFields {
		v := f.value(rec)
		if *v < f.Min {
			*v = f.Min
		}
		if *v > f.Max {
			*v = f.Max
		}
	}
}

// ValidateEnums rejects enum fields holding a value outside the allowed set.
// An empty value is allowed; it is filled by ApplyDefaults on create and left
// untouched on update.
func ValidateEnums(rec *ChecklistRecord) error {
	for _, f := range EnumFields {
		v := *f.value(rec)
		if v == "" {
			continue
		}
		ok := false
		for _, allowed := range f.Allowed {
			if v == allowed {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("invalid value %q for field %s", v, f.Name)
		}
	}
	return nil
}

// EachQuantity calls fn for every supply-quantity field of rec in schema
// order with its wire name and current value.
func EachQuantity(rec *ChecklistRecord, fn func(name string, value int)) {
	for _, f := range QuantityFields {
		fn(f.Name, *f.value(rec))
	}
}

// FieldSpec is the wire representation of one schema entry, served to clients
// so form rendering and validation share a single table. Min and Max are
// pointers so integer fields always serialize their bounds (a lower bound of
// zero included) while boolean and enum fields omit them.
type FieldSpec struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"`
	Min     *int     `json:"min,omitempty"`
	Max     *int     `json:"max,omitempty"`
	Default any      `json:"default"`
	Allowed []string `json:"allowed,omitempty"`
}

// SchemaSpec returns the full declarative field schema in presentation order.
func SchemaSpec() []FieldSpec {
	specs := make([]FieldSpec, 0, len(QuantityFields)+len(TaskFields)+len(EnumFields))
	for _, f := range QuantityFields {
		min, max := f.Min, f.Max
		specs = append(specs, FieldSpec{
			Name: f.Name, Label: f.Label, Kind: KindInteger,
			Min: &min, Max: &max, Default: f.Default,
		})
	}
	for _, f := range TaskFields {
		specs = append(specs, FieldSpec{
			Name: f.Name, Label: f.Label, Kind: KindBoolean, Default: false,
		})
	}
	for _, f := range EnumFields {
		specs = append(specs, FieldSpec{
			Name: f.Name, Label: f.Label, Kind: KindEnum,
			Default: f.Default, Allowed: f.Allowed,
		})
	}
	return specs
}

// QuantityLabel maps a quantity field's wire name to its display label.
// Returns the name itself when the field is unknown.
func QuantityLabel(name string) string {
	for _, f := range QuantityFields {
		if f.Name == name {
			return f.Label
		}
	}
	return name
}
