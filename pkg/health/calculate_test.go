package health

import (
	"math"
	"reflect"
	"testing"
)

func TestCalculateSedentaryMale(t *testing.T) {
	in := Input{
		Gender:   Male,
		AgeYears: 25,
		WeightKG: 70,
		Height:   Height{Mode: Centimeters, CM: 170},
		Activity: Sedentary,
	}
	res, err := Calculate(in, DefaultTargetPolicy())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if math.Abs(res.BMI.BMI-24.22) > 0.01 {
		t.Errorf("bmi = %v, want ~24.22", res.BMI.BMI)
	}
	if res.BMI.Category != Overweight {
		t.Errorf("category = %s, want Overweight", res.BMI.Category)
	}
	// 10*70 + 6.25*170 - 5*25 + 5
	if math.Abs(res.Energy.BMR-1642.5) > 1e-9 {
		t.Errorf("bmr = %v, want 1642.5", res.Energy.BMR)
	}
	if res.Energy.TDEE != 1971 {
		t.Errorf("tdee = %d, want 1971", res.Energy.TDEE)
	}
	if res.Energy.TargetCalories != res.Energy.TDEE-500 {
		t.Errorf("target = %d, want tdee-500 = %d", res.Energy.TargetCalories, res.Energy.TDEE-500)
	}
	if res.Plan.Category != Overweight {
		t.Errorf("plan category = %s, want Overweight", res.Plan.Category)
	}
	if res.BMI.Color != "#f1c40f" {
		t.Errorf("color = %s, want #f1c40f", res.BMI.Color)
	}
}

func TestCalculateFeetInchesFemale(t *testing.T) {
	in := Input{
		Gender:   Female,
		AgeYears: 25,
		WeightKG: 72,
		Height:   Height{Mode: FeetInches, Feet: 5, Inches: 7},
		Activity: ModeratelyActive,
	}
	res, err := Calculate(in, DefaultTargetPolicy())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if math.Abs(res.Measurement.HeightCM-170.18) > 1e-9 {
		t.Errorf("height_cm = %v, want 170.18", res.Measurement.HeightCM)
	}
	if math.Abs(res.BMI.BMI-24.86) > 0.01 {
		t.Errorf("bmi = %v, want ~24.86", res.BMI.BMI)
	}
	if res.BMI.Category != Overweight {
		t.Errorf("category = %s, want Overweight", res.BMI.Category)
	}
	if res.Energy.TDEE != 2321 {
		t.Errorf("tdee = %d, want 2321", res.Energy.TDEE)
	}
	if res.Energy.TargetCalories != 1821 {
		t.Errorf("target = %d, want 1821", res.Energy.TargetCalories)
	}
}

func TestCalculateUnderweightSurplus(t *testing.T) {
	in := Input{Gender: Female, AgeYears: 30, WeightKG: 45, Height: Height{CM: 165}, Activity: LightlyActive}
	res, err := Calculate(in, DefaultTargetPolicy())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.BMI.Category != Underweight {
		t.Fatalf("category = %s, want Underweight", res.BMI.Category)
	}
	if res.Energy.TargetCalories != res.Energy.TDEE+300 {
		t.Errorf("target = %d, want tdee+300", res.Energy.TargetCalories)
	}
	if res.Plan.Goal != "Weight Gain" {
		t.Errorf("plan goal = %q, want Weight Gain", res.Plan.Goal)
	}
}

func TestCalculateNormalMaintains(t *testing.T) {
	in := Input{Gender: Male, AgeYears: 40, WeightKG: 60, Height: Height{CM: 175}, Activity: VeryActive}
	res, err := Calculate(in, TargetPolicy{DeficitKcal: 900, SurplusKcal: 900})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.BMI.Category != Normal {
		t.Fatalf("category = %s, want Normal", res.BMI.Category)
	}
	if res.Energy.TargetCalories != res.Energy.TDEE {
		t.Errorf("normal target = %d, want tdee %d", res.Energy.TargetCalories, res.Energy.TDEE)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	in := Input{Gender: Male, AgeYears: 33, WeightKG: 88.3, Height: Height{Mode: FeetInches, Feet: 5, Inches: 11}, Activity: ExtraActive}
	a, err := Calculate(in, DefaultTargetPolicy())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	b, _ := Calculate(in, DefaultTargetPolicy())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("results differ:\n%+v\n%+v", a, b)
	}
	if math.Float64bits(a.BMI.BMI) != math.Float64bits(b.BMI.BMI) {
		t.Error("bmi not bit-identical")
	}
}

func TestCalculateValidation(t *testing.T) {
	valid := Input{Gender: Male, AgeYears: 25, WeightKG: 70, Height: Height{CM: 170}, Activity: Sedentary}

	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"no gender", func(in *Input) { in.Gender = "" }, "gender"},
		{"zero age", func(in *Input) { in.AgeYears = 0 }, "age"},
		{"zero weight", func(in *Input) { in.WeightKG = 0 }, "weight_kg"},
		{"negative weight", func(in *Input) { in.WeightKG = -3 }, "weight_kg"},
		{"zero height", func(in *Input) { in.Height.CM = 0 }, "height_cm"},
		{"unknown activity", func(in *Input) { in.Activity = "gym rat" }, "activity_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			res, err := Calculate(in, DefaultTargetPolicy())
			if res != nil {
				t.Errorf("expected nil result, got %+v", res)
			}
			assertField(t, err, tt.field)
		})
	}
}
