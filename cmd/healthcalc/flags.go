package main

import (
	"os"
	"path/filepath"

	"github.com/brokenerd/healthcalc/pkg/profile"
	"github.com/spf13/cobra"
)

// profileFlags lets a profile be given inline instead of as profile.yaml.
type profileFlags struct {
	gender   string
	age      int
	weight   float64
	heightCM float64
	feet     float64
	inches   float64
	activity string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.gender, "gender", "Male", "Male or Female")
	cmd.Flags().IntVar(&f.age, "age", 25, "age in years")
	cmd.Flags().Float64Var(&f.weight, "weight", 70, "weight in kg")
	cmd.Flags().Float64Var(&f.heightCM, "height-cm", 170, "height in centimeters")
	cmd.Flags().Float64Var(&f.feet, "feet", 0, "height feet (switches to feet/inches)")
	cmd.Flags().Float64Var(&f.inches, "inches", 0, "height inches, used with --feet")
	cmd.Flags().StringVar(&f.activity, "activity", "Sedentary", "Sedentary, Lightly Active, Moderately Active, Very Active or Extra Active")
}

// resolve loads the profile from the path argument when one is given. The
// path may be a project directory or a YAML file.
func (f *profileFlags) resolve(args []string) (*profile.Profile, error) {
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err == nil && !info.IsDir() {
			return profile.Load(args[0])
		}
		return profile.LoadProject(filepath.Clean(args[0]))
	}
	return f.profile(), nil
}

func (f *profileFlags) profile() *profile.Profile {
	p := &profile.Profile{
		Gender:        f.gender,
		Age:           f.age,
		WeightKG:      f.weight,
		ActivityLevel: f.activity,
		Height:        profile.HeightDef{Unit: "cm", CM: f.heightCM},
	}
	if f.feet > 0 {
		p.Height = profile.HeightDef{Unit: "ft_in", Feet: f.feet, Inches: f.inches}
	}
	return p
}
