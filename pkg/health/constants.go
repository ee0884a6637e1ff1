package health

// Indian/Asian BMI thresholds. Each constant is the inclusive lower bound
// of its band.
const (
	NormalMinBMI     = 18.5
	OverweightMinBMI = 23.0
	ObeseMinBMI      = 25.0

	ScaleMaxBMI = 40.0 // BMI at which the scale bar is full
)

// Unit conversion.
const (
	CmPerInch     = 2.54
	InchesPerFoot = 12.0
)

// Mifflin-St Jeor coefficients.
const (
	BMRWeightFactor = 10.0 // kcal per kg
	BMRHeightFactor = 6.25 // kcal per cm
	BMRAgeFactor    = 5.0  // kcal per year
	BMRMaleOffset   = 5.0
	BMRFemaleOffset = -161.0
)

// Default target adjustment, kcal/day.
const (
	DefaultDeficitKcal = 500
	DefaultSurplusKcal = 300
)
