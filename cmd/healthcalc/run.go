package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brokenerd/healthcalc/internal/config"
	"github.com/brokenerd/healthcalc/internal/export"
	"github.com/brokenerd/healthcalc/internal/server"
	"github.com/brokenerd/healthcalc/pkg/health"
	"github.com/brokenerd/healthcalc/pkg/profile"
	"github.com/brokenerd/healthcalc/pkg/validation"
)

func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// calculate validates the profile and runs the pipeline. Validation problems
// are printed before the error is returned.
func calculate(p *profile.Profile, policy health.TargetPolicy) (*health.Result, error) {
	report := validation.ValidateProfile(p)
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("profile has validation errors")
	}

	in, err := p.Input()
	if err == nil {
		var res *health.Result
		if res, err = health.Calculate(in, policy); err == nil {
			return res, nil
		}
	}
	printValidationReport(validation.FromError(err))
	return nil, fmt.Errorf("calculation failed: %w", err)
}

func runCalc(p *profile.Profile, configPath string, asJSON bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	res, err := calculate(p, cfg.TargetPolicy())
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printResult(res)
	return nil
}

func runValidate(p *profile.Profile) error {
	report := validation.ValidateProfile(p)
	if report.Valid {
		if in, err := p.Input(); err != nil {
			report.Merge(validation.FromError(err))
		} else if _, err := health.Normalize(in); err != nil {
			report.Merge(validation.FromError(err))
		}
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runPlans(category string) error {
	if category == "" {
		for i, plan := range health.DietPlans() {
			if i > 0 {
				fmt.Println()
			}
			printPlan(plan)
		}
		return nil
	}

	c, err := health.ParseCategory(category)
	if err != nil {
		return err
	}
	printPlan(health.LookupDietPlan(c))
	return nil
}

func runExport(p *profile.Profile, configPath, out string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	res, err := calculate(p, cfg.TargetPolicy())
	if err != nil {
		return err
	}

	if err := export.WriteFile(res, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%s, target %d kcal)\n", out, res.BMI.Category, res.Energy.TargetCalories)
	return nil
}

func runServe(configPath string, port int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg).Start(ctx)
}
