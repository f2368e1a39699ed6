package seeder

import (
	"fmt"
)

// Enumerated choices shared by the factories.
var (
	variableCategories = []string{"Dead", "Alive", "Thriving"}
	methodNames        = []string{"satellite", "expert_attestation", "iot_sensor", "image"}
)

// Fields builds a randomized, schema-valid field map for the given
// typename. Parent document keys (and the occasional domain tag) are
// passed positionally, mirroring the creation walk: factories never
// invent foreign keys themselves.
func (g *DataGenerator) Fields(typename string, args ...string) (map[string]any, error) {
	switch typename {
	case "Project":
		if err := wantArgs(typename, args, 0); err != nil {
			return nil, err
		}
		return g.project(), nil
	case "Assessment":
		if err := wantArgs(typename, args, 1); err != nil {
			return nil, err
		}
		return g.assessment(args[0]), nil
	case "LatentVariable":
		if err := wantArgs(typename, args, 2); err != nil {
			return nil, err
		}
		return g.latentVariable(args[0], args[1]), nil
	case "LatentTimestampValueReal", "ObservableTimestampValueReal":
		if err := wantArgs(typename, args, 1); err != nil {
			return nil, err
		}
		return g.timestampValueReal(args[0]), nil
	case "LatentTimestampValueCategorical", "ObservableTimestampValueCategorical":
		if err := wantArgs(typename, args, 1); err != nil {
			return nil, err
		}
		return g.timestampValueCategorical(args[0]), nil
	case "Observable":
		if err := wantArgs(typename, args, 1); err != nil {
			return nil, err
		}
		return g.observable(args[0]), nil
	case "Indicator":
		if err := wantArgs(typename, args, 2); err != nil {
			return nil, err
		}
		return g.indicator(args[0], args[1]), nil
	case "Method":
		if err := wantArgs(typename, args, 1); err != nil {
			return nil, err
		}
		return g.method(args[0]), nil
	case "Evidence":
		if err := wantArgs(typename, args, 2); err != nil {
			return nil, err
		}
		return g.evidence(args[0], args[1]), nil
	case "User":
		if err := wantArgs(typename, args, 0); err != nil {
			return nil, err
		}
		return g.user(), nil
	case "Badge":
		if err := wantArgs(typename, args, 1); err != nil {
			return nil, err
		}
		return g.badge(args[0]), nil
	default:
		return nil, fmt.Errorf("unknown typename: %s", typename)
	}
}

func wantArgs(typename string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s factory expects %d argument(s), got %d", typename, n, len(args))
	}
	return nil
}

func (g *DataGenerator) project() map[string]any {
	return map[string]any{
		"name":   "Project 593",
		"handle": "project-8",
	}
}

func (g *DataGenerator) assessment(projectKey string) map[string]any {
	return map[string]any{
		"project_id": projectKey,
		"date":       g.Datetime(),
	}
}

func (g *DataGenerator) latentVariable(assessmentKey, domain string) map[string]any {
	return map[string]any{
		"assessment_id":       assessmentKey,
		"name":                fmt.Sprintf("Variable %d", g.IntBetween(1, 10000)),
		"domain":              domain,
		"categories":          variableCategories,
		"ordered_categorical": true,
	}
}

func (g *DataGenerator) timestampValueReal(variableKey string) map[string]any {
	median := g.Uniform(0, 10000)
	return map[string]any{
		"variable_id":        variableKey,
		"timestamp":          g.Datetime(),
		"upper_ci95":         median - g.Uniform(0, 500),
		"lower_ci95":         median + g.Uniform(0, 500),
		"median":             median,
		"sigmoid_negentropy": g.Uniform(0, 1),
	}
}

func (g *DataGenerator) timestampValueCategorical(variableKey string) map[string]any {
	return map[string]any{
		"variable_id":        variableKey,
		"timestamp":          g.Datetime(),
		"mode":               g.IntBetween(1, 3),
		"sigmoid_negentropy": g.Uniform(0, 1),
	}
}

func (g *DataGenerator) observable(domain string) map[string]any {
	return map[string]any{
		"domain": domain,
		"name":   fmt.Sprintf("Observable %d", g.IntBetween(1, 1000)),
	}
}

func (g *DataGenerator) indicator(variableKey, observableKey string) map[string]any {
	return map[string]any{
		"observable_id":      observableKey,
		"latent_variable_id": variableKey,
		"correlation":        g.Uniform(0, 1),
		"mutual_information": g.Uniform(0, 1),
	}
}

func (g *DataGenerator) method(observableKey string) map[string]any {
	return map[string]any{
		"observable_id": observableKey,
		"name":          g.Choice(methodNames),
	}
}

func (g *DataGenerator) evidence(observableKey, userKey string) map[string]any {
	return map[string]any{
		"observable_id":  observableKey,
		"uploaded_by_id": userKey,
		"name":           fmt.Sprintf("Evidence %d", g.IntBetween(1, 1000)),
		"asset_url":      fmt.Sprintf("https://example.com/evidence/%d", g.IntBetween(1, 1000)),
		"confidence":     g.Uniform(0, 1),
		"uploaded":       g.Datetime(),
	}
}

func (g *DataGenerator) user() map[string]any {
	return map[string]any{
		"name":        fmt.Sprintf("User %d", g.IntBetween(1, 3)),
		"profile_url": fmt.Sprintf("https://example.com/profile/%d", g.IntBetween(1, 1000)),
	}
}

func (g *DataGenerator) badge(variableKey string) map[string]any {
	return map[string]any{
		"variable_id":     variableKey,
		"handle":          fmt.Sprintf("badge-%d", g.IntBetween(1, 1000)),
		"name":            fmt.Sprintf("Badge %d", g.IntBetween(1, 1000)),
		"description":     fmt.Sprintf("Description of Badge %d", g.IntBetween(1, 1000)),
		"unit":            fmt.Sprintf("Unit %d", g.IntBetween(1, 1000)),
		"more_is_better":  g.Bool(),
		"time_unit":       fmt.Sprintf("Time Unit %d", g.IntBetween(1, 1000)),
		"badge_threshold": g.Uniform(0, 3),
		"zero_threshold":  0.0,
		"confidence":      g.Uniform(0, 1),
	}
}
