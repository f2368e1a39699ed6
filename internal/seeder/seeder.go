package seeder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/verdantlabs/graphseed/internal/defra"
	"github.com/verdantlabs/graphseed/internal/schema"
)

// Client is the slice of the database client the seeder needs.
type Client interface {
	LoadSchema(ctx context.Context, sdl string) error
	Request(ctx context.Context, gql string) (*defra.Response, error)
}

type Seeder struct {
	client      Client
	generator   *DataGenerator
	deps        map[string][]string
	createdKeys map[string][]string
}

func NewSeeder(client Client, generator *DataGenerator) *Seeder {
	deps := make(map[string][]string)
	for _, info := range schema.Types() {
		deps[info.Name] = info.Dependencies
	}

	return &Seeder{
		client:      client,
		generator:   generator,
		deps:        deps,
		createdKeys: make(map[string][]string),
	}
}

// LoadSchema pushes the assessment graph SDL to the database.
func (s *Seeder) LoadSchema(ctx context.Context) error {
	color.Cyan("📐 Loading schema...")
	if err := s.client.LoadSchema(ctx, schema.SDL); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	color.Green("✅ Schema loaded")
	return nil
}

// create generates a record for typename, sends the create mutation and
// returns the new document key. No retries: a failed call aborts the
// whole run.
func (s *Seeder) create(ctx context.Context, typename string, args ...string) (string, error) {
	key, _, err := s.createWithDocument(ctx, typename, args...)
	return key, err
}

func (s *Seeder) createWithDocument(ctx context.Context, typename string, args ...string) (string, map[string]any, error) {
	// Guard the walk order: every parent type must already have at
	// least one created document.
	for _, dep := range s.deps[typename] {
		if len(s.createdKeys[dep]) == 0 {
			return "", nil, fmt.Errorf("cannot create %s before its parent type %s", typename, dep)
		}
	}

	fields, err := s.generator.Fields(typename, args...)
	if err != nil {
		return "", nil, err
	}

	gql, err := defra.CreateMutation(typename, fields)
	if err != nil {
		return "", nil, err
	}

	resp, err := s.client.Request(ctx, gql)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create %s: %w", typename, err)
	}

	key, err := resp.Key(typename)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create %s: %w", typename, err)
	}

	docs, err := resp.Documents(typename)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create %s: %w", typename, err)
	}

	s.createdKeys[typename] = append(s.createdKeys[typename], key)
	return key, docs[0], nil
}

// createTimeseries creates one timestamp-value document for the given
// variable or observable key, picking the typename from kind × domain.
func (s *Seeder) createTimeseries(ctx context.Context, key, domain string, kind Kind) error {
	var typename string
	switch kind {
	case KindObservable:
		switch domain {
		case "Real":
			typename = "ObservableTimestampValueReal"
		case "Categorical":
			typename = "ObservableTimestampValueCategorical"
		}
	case KindLatentVariable:
		switch domain {
		case "Real":
			typename = "LatentTimestampValueReal"
		case "Categorical":
			typename = "LatentTimestampValueCategorical"
		}
	}
	if typename == "" {
		return fmt.Errorf("no timeseries type for kind %q and domain %q", kind, domain)
	}

	_, err := s.create(ctx, typename, key)
	return err
}

// Run walks the entity tree top-down, creating every parent before its
// children and threading the returned keys into the child factories.
// Execution is strictly sequential; each create blocks until the
// database has answered.
func (s *Seeder) Run(ctx context.Context) error {
	color.Cyan("🌱 Seeding assessment graph...")

	order, err := schema.CreationOrder()
	if err != nil {
		return fmt.Errorf("failed to build creation order: %w", err)
	}
	color.Cyan("📋 Creation order: %s", strings.Join(order, " → "))

	projectKey, err := s.create(ctx, "Project")
	if err != nil {
		return err
	}
	color.Green("  ✅ Project %s", projectKey)

	for a := 0; a < assessmentsPerProject; a++ {
		assessmentKey, err := s.create(ctx, "Assessment", projectKey)
		if err != nil {
			return err
		}
		color.Green("  ✅ Assessment %s", assessmentKey)

		for v := 0; v < variablesPerAssessment; v++ {
			variableDomain := s.generator.Choice(variableDomains)
			variableKey, err := s.create(ctx, "LatentVariable", assessmentKey, variableDomain)
			if err != nil {
				return err
			}
			color.Green("    ✅ LatentVariable %s (%s)", variableKey, variableDomain)

			if _, err := s.create(ctx, "Badge", variableKey); err != nil {
				return err
			}

			for t := 0; t < timeseriesPerVariable; t++ {
				if err := s.createTimeseries(ctx, variableKey, variableDomain, KindLatentVariable); err != nil {
					return err
				}
			}

			for i := 0; i < indicatorsPerVariable; i++ {
				if err := s.seedIndicator(ctx, variableKey); err != nil {
					return err
				}
			}
		}
	}

	s.printSummary()
	return nil
}

// seedIndicator creates one observable with its indicator, timeseries,
// method and evidence chain under the given latent variable.
func (s *Seeder) seedIndicator(ctx context.Context, variableKey string) error {
	observableDomain := s.generator.Choice(variableDomains)

	observableKey, _, err := s.createWithDocument(ctx, "Observable", observableDomain)
	if err != nil {
		return err
	}

	if _, err := s.create(ctx, "Indicator", variableKey, observableKey); err != nil {
		return err
	}

	for t := 0; t < timeseriesPerVariable; t++ {
		if err := s.createTimeseries(ctx, observableKey, observableDomain, KindObservable); err != nil {
			return err
		}
	}

	if _, err := s.create(ctx, "Method", observableKey); err != nil {
		return err
	}

	evidenceCount := s.generator.IntBetween(minEvidencePerObs, maxEvidencePerObs)
	for e := 0; e < evidenceCount; e++ {
		// Each evidence record gets a fresh uploader.
		userKey, err := s.create(ctx, "User")
		if err != nil {
			return err
		}
		if _, err := s.create(ctx, "Evidence", observableKey, userKey); err != nil {
			return err
		}
	}

	return nil
}

// CreatedKeys returns the document keys created for a typename, in
// creation order.
func (s *Seeder) CreatedKeys(typename string) []string {
	return s.createdKeys[typename]
}

func (s *Seeder) printSummary() {
	typenames := make([]string, 0, len(s.createdKeys))
	total := 0
	for typename, keys := range s.createdKeys {
		typenames = append(typenames, typename)
		total += len(keys)
	}
	sort.Strings(typenames)

	color.Green("\n✅ Seeding completed: %d documents", total)
	for _, typename := range typenames {
		color.Cyan("  📝 %-36s %d", typename, len(s.createdKeys[typename]))
	}
}
