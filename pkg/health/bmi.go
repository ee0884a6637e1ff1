package health

import "math"

// Height is a height as entered, in either unit system.
type Height struct {
	Mode   HeightMode `json:"unit" yaml:"unit"`
	CM     float64    `json:"cm,omitempty" yaml:"cm,omitempty"`
	Feet   float64    `json:"feet,omitempty" yaml:"feet,omitempty"`
	Inches float64    `json:"inches,omitempty" yaml:"inches,omitempty"`
}

// NormalizeHeight converts h to centimeters.
func NormalizeHeight(h Height) (float64, error) {
	var cm float64
	switch h.Mode {
	case Centimeters, "":
		cm = h.CM
	case FeetInches:
		if h.Feet < 0 {
			return 0, &ValidationError{Field: "height.feet", Value: h.Feet, Reason: "must not be negative"}
		}
		if h.Inches < 0 {
			return 0, &ValidationError{Field: "height.inches", Value: h.Inches, Reason: "must not be negative"}
		}
		cm = FeetInchesToCM(h.Feet, h.Inches)
	default:
		return 0, &ValidationError{Field: "height.unit", Value: h.Mode, Reason: "must be cm or ft_in"}
	}
	if !(cm > 0) || math.IsInf(cm, 0) {
		return 0, &ValidationError{Field: "height_cm", Value: cm, Reason: "must be greater than 0"}
	}
	return cm, nil
}

// FeetInchesToCM applies (feet*12 + inches) * 2.54.
func FeetInchesToCM(feet, inches float64) float64 {
	return (feet*InchesPerFoot + inches) * CmPerInch
}

// ComputeBMI returns weight / height_m². The value is not rounded.
func ComputeBMI(weightKG, heightCM float64) (float64, error) {
	if !(weightKG > 0) || math.IsInf(weightKG, 0) {
		return 0, &ValidationError{Field: "weight_kg", Value: weightKG, Reason: "must be greater than 0"}
	}
	if !(heightCM > 0) || math.IsInf(heightCM, 0) {
		return 0, &ValidationError{Field: "height_cm", Value: heightCM, Reason: "must be greater than 0"}
	}

	m := heightCM / 100
	bmi := weightKG / (m * m)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, &ValidationError{Field: "bmi", Value: bmi, Reason: "not a finite number"}
	}
	return bmi, nil
}

// Classify maps a BMI onto the Indian/Asian scale:
// <18.5 Underweight, 18.5-22.9 Normal, 23.0-24.9 Overweight, >=25.0 Obese.
// Values between the printed bands (e.g. 22.95) fall into the lower band.
func Classify(bmi float64) Category {
	switch {
	case bmi < NormalMinBMI:
		return Underweight
	case bmi < OverweightMinBMI:
		return Normal
	case bmi < ObeseMinBMI:
		return Overweight
	default:
		return Obese
	}
}

// ScaleProgress is the fraction of the 0-40 BMI scale bar to fill.
func ScaleProgress(bmi float64) float64 {
	if bmi <= 0 {
		return 0
	}
	return math.Min(bmi/ScaleMaxBMI, 1.0)
}
