package models

import "time"

// AC filter enum values.
const (
	ACFilterNotNeeded = "Checked, Not Needed"
	ACFilterDone      = "Done"
)

// Bed-stripping enum values.
const (
	StripNotNeeded = "Not Needed"
	StripBundled   = "Bundled"
	StripOK        = "OK"
)

// ChecklistRecord is one cleaning pass for one cabin. A record with
// Completed=false is the cabin's open checklist and counts toward the
// restock aggregation.
type ChecklistRecord struct {
	ID          string `bson:"id" json:"id"`
	CabinNumber int    `bson:"cabinNumber" json:"cabinNumber"`
	Date        string `bson:"date" json:"date"`
	GuestName   string `bson:"guestName" json:"guestName"`

	// Task fields.
	ClearDoorCodes     bool   `bson:"clearDoorCodes" json:"clearDoorCodes"`
	ResetThermostats   bool   `bson:"resetThermostats" json:"resetThermostats"`
	CleanACFilter      string `bson:"cleanACFilter" json:"cleanACFilter"`
	CheckUnderBedsSofa bool   `bson:"checkUnderBedsSofa" json:"checkUnderBedsSofa"`
	CheckShower        bool   `bson:"checkShower" json:"checkShower"`
	GatherTowels       bool   `bson:"gatherTowels" json:"gatherTowels"`
	EmptyCoffeeWater   bool   `bson:"emptyCoffeeWater" json:"emptyCoffeeWater"`
	EmptyCoffeePod     bool   `bson:"emptyCoffeePod" json:"emptyCoffeePod"`
	EmptyRefrigerator  bool   `bson:"emptyRefrigerator" json:"emptyRefrigerator"`
	EmptyMicrowaveOven bool   `bson:"emptyMicrowaveOven" json:"emptyMicrowaveOven"`
	TVRemoteUnderTV    bool   `bson:"tvRemoteUnderTV" json:"tvRemoteUnderTV"`
	ShakeRugs          bool   `bson:"shakeRugs" json:"shakeRugs"`
	StripQueenBeds     string `bson:"stripQueenBeds" json:"stripQueenBeds"`
	StripKingBeds      string `bson:"stripKingBeds" json:"stripKingBeds"`

	// Bathroom supplies.
	BathTowels      int `bson:"bathTowels" json:"bathTowels"`
	HandTowels      int `bson:"handTowels" json:"handTowels"`
	WashCloths      int `bson:"washCloths" json:"washCloths"`
	MakeupCloths    int `bson:"makeupCloths" json:"makeupCloths"`
	BathMat         int `bson:"bathMat" json:"bathMat"`
	Shampoo         int `bson:"shampoo" json:"shampoo"`
	Conditioner     int `bson:"conditioner" json:"conditioner"`
	BodyWash        int `bson:"bodyWash" json:"bodyWash"`
	BodyLotion      int `bson:"bodyLotion" json:"bodyLotion"`
	BarSoap         int `bson:"barSoap" json:"barSoap"`
	SoapDispenser   int `bson:"soapDispenser" json:"soapDispenser"`
	ToiletPaper     int `bson:"toiletPaper" json:"toiletPaper"`
	BathroomCups    int `bson:"bathroomCups" json:"bathroomCups"`
	Kleenex         int `bson:"kleenex" json:"kleenex"`
	Pen             int `bson:"pen" json:"pen"`
	BathCheckLights int `bson:"bathCheckLights" json:"bathCheckLights"`

	// Kitchen and living area supplies.
	WaterBottles         int `bson:"waterBottles" json:"waterBottles"`
	CoffeePods           int `bson:"coffeePods" json:"coffeePods"`
	CoffeeSweeteners     int `bson:"coffeeSweeteners" json:"coffeeSweeteners"`
	CoffeeCreamer        int `bson:"coffeeCreamer" json:"coffeeCreamer"`
	CoffeeCupsCeramic    int `bson:"coffeeCupsCeramic" json:"coffeeCupsCeramic"`
	CoffeeCupsPaper      int `bson:"coffeeCupsPaper" json:"coffeeCupsPaper"`
	CoffeeCupLids        int `bson:"coffeeCupLids" json:"coffeeCupLids"`
	CoffeeStirrers       int `bson:"coffeeStirrers" json:"coffeeStirrers"`
	EmptyRelineTrashCans int `bson:"emptyRelineTrashCans" json:"emptyRelineTrashCans"`
	PaperTowels          int `bson:"paperTowels" json:"paperTowels"`
	DishSoap             int `bson:"dishSoap" json:"dishSoap"`

	// Batteries.
	LockBattery           int `bson:"lockBattery" json:"lockBattery"`
	SmokeAlarmBattery     int `bson:"smokeAlarmBattery" json:"smokeAlarmBattery"`
	MotionDetectorBattery int `bson:"motionDetectorBattery" json:"motionDetectorBattery"`
	DoorSensorBattery     int `bson:"doorSensorBattery" json:"doorSensorBattery"`
	LivingCheckLights     int `bson:"livingCheckLights" json:"livingCheckLights"`

	RestockInventory   string `bson:"restockInventory" json:"restockInventory"`
	DamagesYesNo       bool   `bson:"damagesYesNo" json:"damagesYesNo"`
	DamagesDescription string `bson:"damagesDescription" json:"damagesDescription"`
	Completed          bool   `bson:"completed" json:"completed"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DateLayout is the display format for ChecklistRecord.Date (MM/DD/YY).
const DateLayout = "01/02/06"

// NewChecklistRecord returns a record for the given cabin with every field at
// its schema default and the date set to today.
func NewChecklistRecord(cabinNumber int) ChecklistRecord {
	rec := ChecklistRecord{
		CabinNumber: cabinNumber,
		Date:        time.Now().Format(DateLayout),
	}
	ApplyDefaults(&rec)
	return rec
}
