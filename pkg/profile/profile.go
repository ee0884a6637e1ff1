package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brokenerd/healthcalc/pkg/health"
	"gopkg.in/yaml.v3"
)

// FileName is the profile file looked up inside a project directory.
const FileName = "profile.yaml"

// Profile is the raw form input as written by a user, before any parsing.
type Profile struct {
	Gender        string    `yaml:"gender" json:"gender"`
	Age           int       `yaml:"age" json:"age"`
	WeightKG      float64   `yaml:"weight_kg" json:"weight_kg"`
	Height        HeightDef `yaml:"height" json:"height"`
	ActivityLevel string    `yaml:"activity_level" json:"activity_level"`
}

// HeightDef is the height entry. Unit is "cm" (default) or "ft_in".
type HeightDef struct {
	Unit   string  `yaml:"unit" json:"unit"`
	CM     float64 `yaml:"cm" json:"cm"`
	Feet   float64 `yaml:"feet" json:"feet"`
	Inches float64 `yaml:"inches" json:"inches"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	return Parse(data)
}

// Parse decodes profile YAML. JSON is valid YAML, so request bodies go
// through here too.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	return &p, nil
}

// LoadProject loads profile.yaml from a project directory.
func LoadProject(projectDir string) (*Profile, error) {
	return Load(filepath.Join(projectDir, FileName))
}

// Input converts the raw profile into calculator input. Errors are
// *health.ValidationError values naming the bad field.
func (p *Profile) Input() (health.Input, error) {
	gender, err := health.ParseGender(p.Gender)
	if err != nil {
		return health.Input{}, err
	}
	activity, err := health.ParseActivityLevel(p.ActivityLevel)
	if err != nil {
		return health.Input{}, err
	}
	mode, err := health.ParseHeightMode(p.Height.Unit)
	if err != nil {
		return health.Input{}, err
	}

	return health.Input{
		Gender:   gender,
		AgeYears: p.Age,
		WeightKG: p.WeightKG,
		Height: health.Height{
			Mode:   mode,
			CM:     p.Height.CM,
			Feet:   p.Height.Feet,
			Inches: p.Height.Inches,
		},
		Activity: activity,
	}, nil
}
