package health

// Input is one complete set of form values.
type Input struct {
	Gender   Gender        `json:"gender"`
	AgeYears int           `json:"age_years"`
	WeightKG float64       `json:"weight_kg"`
	Height   Height        `json:"height"`
	Activity ActivityLevel `json:"activity_level"`
}

// Measurement is the input with height normalised to centimeters.
type Measurement struct {
	WeightKG float64 `json:"weight_kg"`
	HeightCM float64 `json:"height_cm"`
	AgeYears int     `json:"age_years"`
	Gender   Gender  `json:"gender"`
}

// BMIResult holds the BMI and its classification.
type BMIResult struct {
	BMI           float64  `json:"bmi"`
	Category      Category `json:"category"`
	Color         string   `json:"color"`
	ScaleProgress float64  `json:"scale_progress"`
}

// EnergyResult holds the calorie estimates.
type EnergyResult struct {
	BMR            float64 `json:"bmr"`
	TDEE           int     `json:"tdee"`
	TargetCalories int     `json:"target_calories"`
}

// Result is the output of one Calculate run.
type Result struct {
	Measurement Measurement   `json:"measurement"`
	Activity    ActivityLevel `json:"activity_level"`
	BMI         BMIResult     `json:"bmi"`
	Energy      EnergyResult  `json:"energy"`
	Policy      TargetPolicy  `json:"policy"`
	Plan        DietPlan      `json:"diet_plan"`
}

// Calculate runs the full pipeline: height normalisation, BMI, category,
// BMR, TDEE, target calories and diet plan. It has no side effects and
// returns the first *ValidationError it hits.
func Calculate(in Input, policy TargetPolicy) (*Result, error) {
	m, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	bmi, err := ComputeBMI(m.WeightKG, m.HeightCM)
	if err != nil {
		return nil, err
	}
	category := Classify(bmi)

	bmr := ComputeBMR(m.WeightKG, m.HeightCM, m.AgeYears, m.Gender)
	tdee, err := ComputeTDEE(bmr, in.Activity)
	if err != nil {
		return nil, err
	}

	return &Result{
		Measurement: m,
		Activity:    in.Activity,
		BMI: BMIResult{
			BMI:           bmi,
			Category:      category,
			Color:         category.Color(),
			ScaleProgress: ScaleProgress(bmi),
		},
		Energy: EnergyResult{
			BMR:            bmr,
			TDEE:           tdee,
			TargetCalories: policy.Target(tdee, category),
		},
		Policy: policy,
		Plan:   LookupDietPlan(category),
	}, nil
}

// Normalize checks the scalar inputs and resolves height to centimeters.
func Normalize(in Input) (Measurement, error) {
	if !in.Gender.Valid() {
		return Measurement{}, &ValidationError{Field: "gender", Value: in.Gender, Reason: "must be Male or Female"}
	}
	if in.AgeYears <= 0 {
		return Measurement{}, &ValidationError{Field: "age", Value: in.AgeYears, Reason: "must be greater than 0"}
	}
	if !(in.WeightKG > 0) {
		return Measurement{}, &ValidationError{Field: "weight_kg", Value: in.WeightKG, Reason: "must be greater than 0"}
	}
	cm, err := NormalizeHeight(in.Height)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{
		WeightKG: in.WeightKG,
		HeightCM: cm,
		AgeYears: in.AgeYears,
		Gender:   in.Gender,
	}, nil
}
