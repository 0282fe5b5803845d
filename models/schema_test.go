package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var rec ChecklistRecord
	ApplyDefaults(&rec)

	assert.Equal(t, 4, rec.BathTowels)
	assert.Equal(t, 2, rec.HandTowels)
	assert.Equal(t, 2, rec.ToiletPaper)
	assert.Equal(t, 4, rec.CoffeeCupsPaper)
	assert.Equal(t, 0, rec.CoffeePods)
	assert.Equal(t, 0, rec.Pen)
	assert.Equal(t, ACFilterNotNeeded, rec.CleanACFilter)
	assert.Equal(t, StripNotNeeded, rec.StripQueenBeds)
	assert.Equal(t, StripNotNeeded, rec.StripKingBeds)
}

func TestNewChecklistRecordSetsDate(t *testing.T) {
	rec := NewChecklistRecord(1)

	assert.Equal(t, 1, rec.CabinNumber)
	assert.Regexp(t, `^\d{2}/\d{2}/\d{2}$`, rec.Date)
	assert.False(t, rec.Completed)
}

func TestClampQuantities(t *testing.T) {
	var rec ChecklistRecord
	rec.BathTowels = 10
	rec.CoffeePods = 13
	rec.BathroomCups = -2
	rec.LivingCheckLights = 5

	ClampQuantities(&rec)

	assert.Equal(t, 4, rec.BathTowels)
	assert.Equal(t, 12, rec.CoffeePods)
	assert.Equal(t, 0, rec.BathroomCups)
	assert.Equal(t, 5, rec.LivingCheckLights)
}

func TestValidateEnums(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ChecklistRecord)
		expectError bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(r *ChecklistRecord) { ApplyDefaults(r) },
		},
		{
			name:   "empty values allowed",
			mutate: func(r *ChecklistRecord) {},
		},
		{
			name:   "ac filter done",
			mutate: func(r *ChecklistRecord) { r.CleanACFilter = ACFilterDone },
		},
		{
			name:   "strip beds bundled",
			mutate: func(r *ChecklistRecord) { r.StripQueenBeds = StripBundled },
		},
		{
			name:        "bad ac filter",
			mutate:      func(r *ChecklistRecord) { r.CleanACFilter = "Done!" },
			expectError: true,
		},
		{
			name:        "bad strip value",
			mutate:      func(r *ChecklistRecord) { r.StripKingBeds = "Folded" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec ChecklistRecord
			tt.mutate(&rec)
			err := ValidateEnums(&rec)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEachQuantityCoversEveryField(t *testing.T) {
	var rec ChecklistRecord
	seen := map[string]bool{}
	EachQuantity(&rec, func(name string, _ int) {
		seen[name] = true
	})

	assert.Len(t, seen, len(QuantityFields))
	assert.True(t, seen["bathTowels"])
	assert.True(t, seen["livingCheckLights"])
	assert.NotContains(t, seen, "cabinNumber")
}

func TestSchemaSpec(t *testing.T) {
	specs := SchemaSpec()
	require.Len(t, specs, len(QuantityFields)+len(TaskFields)+len(EnumFields))

	byName := map[string]FieldSpec{}
	for _, s := range specs {
		byName[s.Name] = s
	}

	towels, ok := byName["bathTowels"]
	require.True(t, ok)
	assert.Equal(t, KindInteger, towels.Kind)
	assert.Equal(t, "Bath Towels", towels.Label)
	require.NotNil(t, towels.Min)
	require.NotNil(t, towels.Max)
	assert.Equal(t, 0, *towels.Min)
	assert.Equal(t, 4, *towels.Max)

	ac, ok := byName["cleanACFilter"]
	require.True(t, ok)
	assert.Equal(t, KindEnum, ac.Kind)
	assert.Equal(t, []string{ACFilterNotNeeded, ACFilterDone}, ac.Allowed)

	doors, ok := byName["clearDoorCodes"]
	require.True(t, ok)
	assert.Equal(t, KindBoolean, doors.Kind)
	assert.Nil(t, doors.Min)
	assert.Nil(t, doors.Max)
}

// A zero lower bound is still a bound; integer fields must serialize both
// bounds while boolean and enum fields carry neither.
func TestSchemaSpecSerializesZeroBounds(t *testing.T) {
	raw, err := json.Marshal(SchemaSpec())
	require.NoError(t, err)

	var specs []map[string]any
	require.NoError(t, json.Unmarshal(raw, &specs))

	for _, s := range specs {
		name := s["name"].(string)
		switch s["kind"] {
		case KindInteger:
			assert.Contains(t, s, "min", name)
			assert.Contains(t, s, "max", name)
		default:
			assert.NotContains(t, s, "min", name)
			assert.NotContains(t, s, "max", name)
		}
	}
}

func TestQuantityLabel(t *testing.T) {
	assert.Equal(t, "Trash Bags", QuantityLabel("emptyRelineTrashCans"))
	assert.Equal(t, "Door Sensor Battery (CR2032)", QuantityLabel("doorSensorBattery"))
	assert.Equal(t, "mystery", QuantityLabel("mystery"))
}
