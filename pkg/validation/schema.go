package validation

import (
	"fmt"

	"github.com/brokenerd/healthcalc/pkg/health"
	"github.com/brokenerd/healthcalc/pkg/profile"
)

// Form ranges enforced at the input boundary.
const (
	MinAge      = 10
	MaxAge      = 100
	MinWeightKG = 1.0
	MaxWeightKG = 300.0
	MinHeightCM = 50.0
	MaxHeightCM = 250.0
	MinFeet     = 1.0
	MaxFeet     = 8.0
	MinInches   = 0.0
	MaxInches   = 11.0
)

// ValidateProfile checks a raw profile against the form ranges before it
// reaches the calculator. Every problem is reported, not just the first.
func ValidateProfile(p *profile.Profile) *Report {
	r := NewReport()

	validateGender(p, r)
	validateAge(p, r)
	validateWeight(p, r)
	validateHeight(p, r)
	validateActivity(p, r)

	return r
}

func validateGender(p *profile.Profile, r *Report) {
	if _, err := health.ParseGender(p.Gender); err != nil {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("gender %q is not recognised", p.Gender),
			Path:        "gender",
			ActualValue: p.Gender,
			Expected:    "Male | Female",
		})
	}
}

func validateAge(p *profile.Profile, r *Report) {
	if p.Age < MinAge || p.Age > MaxAge {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("age %d is outside valid range (%d-%d)", p.Age, MinAge, MaxAge),
			Path:        "age",
			ActualValue: p.Age,
			Expected:    fmt.Sprintf("%d-%d", MinAge, MaxAge),
		})
	}
}

func validateWeight(p *profile.Profile, r *Report) {
	if !(p.WeightKG >= MinWeightKG && p.WeightKG <= MaxWeightKG) {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("weight_kg %.1f is outside valid range (%.0f-%.0f kg)", p.WeightKG, MinWeightKG, MaxWeightKG),
			Path:        "weight_kg",
			ActualValue: p.WeightKG,
			Expected:    fmt.Sprintf("%.0f-%.0f", MinWeightKG, MaxWeightKG),
		})
	}
}

func validateHeight(p *profile.Profile, r *Report) {
	mode, err := health.ParseHeightMode(p.Height.Unit)
	if err != nil {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("height unit %q is not recognised", p.Height.Unit),
			Path:        "height.unit",
			ActualValue: p.Height.Unit,
			Expected:    "cm | ft_in",
		})
		return
	}

	if mode == health.Centimeters {
		if !(p.Height.CM >= MinHeightCM && p.Height.CM <= MaxHeightCM) {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("height %.1f cm is outside valid range (%.0f-%.0f cm)", p.Height.CM, MinHeightCM, MaxHeightCM),
				Path:        "height.cm",
				ActualValue: p.Height.CM,
				Expected:    fmt.Sprintf("%.0f-%.0f", MinHeightCM, MaxHeightCM),
			})
		}
		if p.Height.Feet != 0 || p.Height.Inches != 0 {
			r.AddWarning(Result{
				Level:       LevelInput,
				Message:     "feet/inches are ignored when height unit is cm",
				Path:        "height",
				Suggestions: []string{"Set height.unit to ft_in to use feet and inches"},
			})
		}
		return
	}

	if !(p.Height.Feet >= MinFeet && p.Height.Feet <= MaxFeet) {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("height %.0f ft is outside valid range (%.0f-%.0f ft)", p.Height.Feet, MinFeet, MaxFeet),
			Path:        "height.feet",
			ActualValue: p.Height.Feet,
			Expected:    fmt.Sprintf("%.0f-%.0f", MinFeet, MaxFeet),
		})
	}
	if !(p.Height.Inches >= MinInches && p.Height.Inches <= MaxInches) {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("height %.1f in is outside valid range (%.0f-%.0f in)", p.Height.Inches, MinInches, MaxInches),
			Path:        "height.inches",
			ActualValue: p.Height.Inches,
			Expected:    fmt.Sprintf("%.0f-%.0f", MinInches, MaxInches),
			Suggestions: []string{"Carry 12 inches or more over into feet"},
		})
	}
}

func validateActivity(p *profile.Profile, r *Report) {
	if _, err := health.ParseActivityLevel(p.ActivityLevel); err != nil {
		expected := ""
		for i, a := range health.ActivityLevels {
			if i > 0 {
				expected += " | "
			}
			expected += a.DisplayName()
		}
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("activity_level %q is not recognised", p.ActivityLevel),
			Path:        "activity_level",
			ActualValue: p.ActivityLevel,
			Expected:    expected,
		})
	}
}
