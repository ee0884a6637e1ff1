package health

import (
	_ "embed"
	"fmt"
	"log"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var plansYAML []byte

// DietPlan is the static Indian-cuisine plan for one BMI category.
type DietPlan struct {
	Category  Category `yaml:"-" json:"category"`
	Goal      string   `yaml:"goal" json:"goal"`
	Strategy  string   `yaml:"strategy" json:"strategy"`
	Breakfast string   `yaml:"breakfast" json:"breakfast"`
	Lunch     string   `yaml:"lunch" json:"lunch"`
	Snack     string   `yaml:"snack" json:"snack"`
	Dinner    string   `yaml:"dinner" json:"dinner"`
	Tip       string   `yaml:"tip" json:"tip"`
}

// Meals returns the four meal slots in serving order.
func (p DietPlan) Meals() [4]string {
	return [4]string{p.Breakfast, p.Lunch, p.Snack, p.Dinner}
}

func (p DietPlan) missingField() string {
	fields := []struct {
		name, value string
	}{
		{"goal", p.Goal},
		{"strategy", p.Strategy},
		{"breakfast", p.Breakfast},
		{"lunch", p.Lunch},
		{"snack", p.Snack},
		{"dinner", p.Dinner},
		{"tip", p.Tip},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

var (
	plansOnce sync.Once
	plans     map[Category]DietPlan

	// PlanFallbackHook, when set, is called each time LookupDietPlan is asked
	// for a category it does not know.
	PlanFallbackHook func(requested Category)
)

// ParsePlans decodes a category-keyed YAML plan table and checks that every
// category has exactly one complete plan.
func ParsePlans(data []byte) (map[Category]DietPlan, error) {
	var raw map[string]DietPlan
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing diet plan YAML: %w", err)
	}

	table := make(map[Category]DietPlan, len(Categories))
	for key, plan := range raw {
		c, err := ParseCategory(key)
		if err != nil {
			return nil, err
		}
		if _, dup := table[c]; dup {
			return nil, fmt.Errorf("duplicate diet plan for %s", c)
		}
		if field := plan.missingField(); field != "" {
			return nil, fmt.Errorf("diet plan %s: %s is empty", c, field)
		}
		plan.Category = c
		table[c] = plan
	}
	for _, c := range Categories {
		if _, ok := table[c]; !ok {
			return nil, fmt.Errorf("missing diet plan for %s", c)
		}
	}
	return table, nil
}

func planTable() map[Category]DietPlan {
	plansOnce.Do(func() {
		t, err := ParsePlans(plansYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded diet plans: %v", err))
		}
		plans = t
	})
	return plans
}

// LookupDietPlan returns the plan for c. An unknown category gets the
// Normal plan; the classifier never produces one, so this is logged.
func LookupDietPlan(c Category) DietPlan {
	t := planTable()
	if p, ok := t[c]; ok {
		return p
	}
	log.Printf("diet plan: unknown category %q, falling back to %s", c, Normal)
	if PlanFallbackHook != nil {
		PlanFallbackHook(c)
	}
	return t[Normal]
}

// DietPlans returns all plans in ascending BMI order.
func DietPlans() []DietPlan {
	t := planTable()
	out := make([]DietPlan, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, t[c])
	}
	return out
}
