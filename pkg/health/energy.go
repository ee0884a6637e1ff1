package health

// ComputeBMR estimates basal metabolic rate with the Mifflin-St Jeor
// equation. Any gender other than Male takes the female offset.
func ComputeBMR(weightKG, heightCM float64, ageYears int, g Gender) float64 {
	bmr := BMRWeightFactor*weightKG + BMRHeightFactor*heightCM - BMRAgeFactor*float64(ageYears)
	if g == Male {
		return bmr + BMRMaleOffset
	}
	return bmr + BMRFemaleOffset
}

// ComputeTDEE multiplies bmr by the activity multiplier and truncates.
func ComputeTDEE(bmr float64, a ActivityLevel) (int, error) {
	mult, ok := a.Multiplier()
	if !ok {
		return 0, &ValidationError{Field: "activity_level", Value: a, Reason: "unknown activity level"}
	}
	return int(bmr * mult), nil
}

// TargetPolicy is the fixed kcal adjustment applied to TDEE per category.
// It is not personalised to rate of change or activity.
type TargetPolicy struct {
	DeficitKcal int `json:"deficit_kcal" yaml:"deficit_kcal"`
	SurplusKcal int `json:"surplus_kcal" yaml:"surplus_kcal"`
}

// DefaultTargetPolicy is -500 kcal for Overweight/Obese and +300 for Underweight.
func DefaultTargetPolicy() TargetPolicy {
	return TargetPolicy{
		DeficitKcal: DefaultDeficitKcal,
		SurplusKcal: DefaultSurplusKcal,
	}
}

// Target returns the daily calorie goal for a category.
func (p TargetPolicy) Target(tdee int, c Category) int {
	switch c {
	case Overweight, Obese:
		return tdee - p.DeficitKcal
	case Underweight:
		return tdee + p.SurplusKcal
	default:
		return tdee
	}
}

// ComputeTarget applies DefaultTargetPolicy.
func ComputeTarget(tdee int, c Category) int {
	return DefaultTargetPolicy().Target(tdee, c)
}
