package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/brokenerd/healthcalc/pkg/health"
	"github.com/xuri/excelize/v2"
)

const (
	ResultsSheet = "Results"
	PlanSheet    = "Diet Plan"
)

// Workbook builds an xlsx workbook with a results sheet and a diet plan sheet.
func Workbook(res *health.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return nil, fmt.Errorf("error renaming sheet: %w", err)
	}
	if err := writeResults(f, res); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(PlanSheet); err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	if err := writePlan(f, res.Plan); err != nil {
		return nil, err
	}

	idx, err := f.GetSheetIndex(ResultsSheet)
	if err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

// WriteFile saves the workbook for res to path, creating parent directories.
func WriteFile(res *health.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating export directory: %w", err)
		}
	}

	f, err := Workbook(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}
	return nil
}

func writeResults(f *excelize.File, res *health.Result) error {
	m := res.Measurement
	rows := [][2]any{
		{"Metric", "Value"},
		{"Gender", string(m.Gender)},
		{"Age (years)", m.AgeYears},
		{"Weight (kg)", m.WeightKG},
		{"Height (cm)", round(m.HeightCM, 2)},
		{"Activity level", res.Activity.DisplayName()},
		{"BMI", round(res.BMI.BMI, 1)},
		{"Category", string(res.BMI.Category)},
		{"BMR (kcal)", round(res.Energy.BMR, 1)},
		{"TDEE (kcal)", res.Energy.TDEE},
		{"Target (kcal)", res.Energy.TargetCalories},
	}

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ResultsSheet, cell, v); err != nil {
				return fmt.Errorf("error writing %s: %w", cell, err)
			}
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(ResultsSheet, "A1", "B1", header)
	}

	// category row takes the category colour
	catStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{res.BMI.Color}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(ResultsSheet, "B8", "B8", catStyle)
	}

	f.SetColWidth(ResultsSheet, "A", "A", 18)
	f.SetColWidth(ResultsSheet, "B", "B", 20)
	return nil
}

func writePlan(f *excelize.File, p health.DietPlan) error {
	rows := [][2]string{
		{"Category", string(p.Category)},
		{"Goal", p.Goal},
		{"Strategy", p.Strategy},
		{"Breakfast", p.Breakfast},
		{"Lunch", p.Lunch},
		{"Snack", p.Snack},
		{"Dinner", p.Dinner},
		{"Tip", p.Tip},
	}

	for i, row := range rows {
		r := i + 1
		if err := f.SetCellValue(PlanSheet, fmt.Sprintf("A%d", r), row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(PlanSheet, fmt.Sprintf("B%d", r), row[1]); err != nil {
			return err
		}
	}

	label, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(PlanSheet, "A1", fmt.Sprintf("A%d", len(rows)), label)
	}
	f.SetColWidth(PlanSheet, "A", "A", 12)
	f.SetColWidth(PlanSheet, "B", "B", 70)
	return nil
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
