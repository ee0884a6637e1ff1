package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brokenerd/healthcalc/pkg/health"
	"github.com/brokenerd/healthcalc/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	writeValidationReport(os.Stdout, r)
}

func writeValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			for _, s := range wr.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res *health.Result) {
	writeResult(os.Stdout, res)
}

func writeResult(w io.Writer, res *health.Result) {
	m := res.Measurement

	fmt.Fprintln(w, "Your Results")
	fmt.Fprintln(w, "============")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s, %d years, %.1f kg, %.1f cm, %s\n",
		m.Gender, m.AgeYears, m.WeightKG, m.HeightCM, res.Activity.DisplayName())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s %8.1f  %s\n", "BMI", res.BMI.BMI, res.BMI.Category)
	fmt.Fprintf(w, "  %-8s %8d  maintenance kcal\n", "TDEE", res.Energy.TDEE)
	fmt.Fprintf(w, "  %-8s %8d  daily goal kcal\n", "Target", res.Energy.TargetCalories)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", scaleBar(res.BMI.ScaleProgress, 40))
	fmt.Fprintf(w, "  BMI Scale (Asian Standard): Underweight < %.1f | Normal %.1f-22.9 | Overweight %.1f-24.9 | Obese >= %.1f\n",
		health.NormalMinBMI, health.NormalMinBMI, health.OverweightMinBMI, health.ObeseMinBMI)
	fmt.Fprintln(w)

	writePlan(w, res.Plan)
}

func printPlan(p health.DietPlan) {
	writePlan(os.Stdout, p)
}

func writePlan(w io.Writer, p health.DietPlan) {
	title := fmt.Sprintf("%s Diet Plan", p.Category)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
	fmt.Fprintf(w, "  Strategy:  %s (%s)\n", p.Goal, p.Strategy)
	fmt.Fprintf(w, "  Breakfast: %s\n", p.Breakfast)
	fmt.Fprintf(w, "  Lunch:     %s\n", p.Lunch)
	fmt.Fprintf(w, "  Snack:     %s\n", p.Snack)
	fmt.Fprintf(w, "  Dinner:    %s\n", p.Dinner)
	fmt.Fprintf(w, "  Tip:       %s\n", p.Tip)
}

func scaleBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
