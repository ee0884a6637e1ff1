package health

import (
	"fmt"
	"strings"
)

// Gender selects the Mifflin-St Jeor offset.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// ParseGender accepts "male"/"female" in any case, plus "m"/"f".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", &ValidationError{Field: "gender", Value: s, Reason: "must be Male or Female"}
}

// Category is the BMI classification on the Indian/Asian scale.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Categories lists every category in ascending BMI order.
var Categories = []Category{Underweight, Normal, Overweight, Obese}

// Valid reports whether c is one of the four categories.
func (c Category) Valid() bool {
	switch c {
	case Underweight, Normal, Overweight, Obese:
		return true
	}
	return false
}

// Color returns the display colour used for the category.
func (c Category) Color() string {
	switch c {
	case Underweight:
		return "#3498db"
	case Normal:
		return "#2ecc71"
	case Overweight:
		return "#f1c40f"
	case Obese:
		return "#e74c3c"
	}
	return "#555555"
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown BMI category %q", s)
}

// ActivityLevel is one of the five TDEE activity tiers.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtraActive      ActivityLevel = "extra_active"
)

// ActivityLevels lists the tiers from least to most active.
var ActivityLevels = []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtraActive}

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

var activityNames = map[ActivityLevel]string{
	Sedentary:        "Sedentary",
	LightlyActive:    "Lightly Active",
	ModeratelyActive: "Moderately Active",
	VeryActive:       "Very Active",
	ExtraActive:      "Extra Active",
}

// Multiplier returns the TDEE multiplier and whether the level is known.
func (a ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// DisplayName returns the human label, e.g. "Moderately Active".
func (a ActivityLevel) DisplayName() string {
	if name, ok := activityNames[a]; ok {
		return name
	}
	return string(a)
}

// ParseActivityLevel accepts either the key ("very_active") or the display
// name ("Very Active"), case-insensitively.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	a := ActivityLevel(norm)
	if _, ok := activityMultipliers[a]; ok {
		return a, nil
	}
	return "", &ValidationError{Field: "activity_level", Value: s, Reason: "unknown activity level"}
}

// HeightMode says how height was entered.
type HeightMode string

const (
	Centimeters HeightMode = "cm"
	FeetInches  HeightMode = "ft_in"
)

// ParseHeightMode accepts "cm"/"centimeters" and "ft_in"/"feet/inches".
func ParseHeightMode(s string) (HeightMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm", "centimeters", "centimetres", "":
		return Centimeters, nil
	case "ft_in", "ft", "feet", "feet/inches", "imperial":
		return FeetInches, nil
	}
	return "", &ValidationError{Field: "height.unit", Value: s, Reason: "must be cm or ft_in"}
}
