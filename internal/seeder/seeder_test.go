package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/verdantlabs/graphseed/internal/defra"
)

var createMutationRe = regexp.MustCompile(`^mutation \{ create_(\w+)\(data: (".*")\) \{ _key \} \}$`)

type createdRecord struct {
	seq      int
	typename string
	fields   map[string]any
}

// fakeClient decodes create mutations, hands out keys and records every
// created document in order.
type fakeClient struct {
	records     []createdRecord
	keySeq      map[string]int // key -> sequence it was issued at
	schemaLoads int
	failAfter   int // fail the nth request onwards; 0 disables
}

func newFakeClient() *fakeClient {
	return &fakeClient{keySeq: make(map[string]int)}
}

func (f *fakeClient) LoadSchema(ctx context.Context, sdl string) error {
	f.schemaLoads++
	return nil
}

func (f *fakeClient) Request(ctx context.Context, gql string) (*defra.Response, error) {
	if f.failAfter > 0 && len(f.records)+1 >= f.failAfter {
		return nil, fmt.Errorf("injected failure")
	}

	match := createMutationRe.FindStringSubmatch(gql)
	if match == nil {
		return nil, fmt.Errorf("unexpected mutation: %s", gql)
	}
	typename := match[1]

	quoted, err := strconv.Unquote(match[2])
	if err != nil {
		return nil, fmt.Errorf("failed to unquote payload: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(quoted), &fields); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	seq := len(f.records)
	key := fmt.Sprintf("bae-%s-%d", typename, seq)
	f.records = append(f.records, createdRecord{seq: seq, typename: typename, fields: fields})
	f.keySeq[key] = seq

	var envelope defra.Response
	raw := fmt.Sprintf(`{"data": {"create_%s": [{"_key": %q}]}}`, typename, key)
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

func (f *fakeClient) countByType() map[string]int {
	counts := make(map[string]int)
	for _, rec := range f.records {
		counts[rec.typename]++
	}
	return counts
}

func TestRunCreatesExpectedCounts(t *testing.T) {
	fake := newFakeClient()
	s := NewSeeder(fake, NewSeededDataGenerator(1))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	counts := fake.countByType()

	expected := map[string]int{
		"Project":                      1,
		"Assessment":                   2,
		"LatentVariable":               4,
		"Badge":                        4,
		"LatentTimestampValueReal":     12,
		"Observable":                   12,
		"Indicator":                    12,
		"ObservableTimestampValueReal": 36,
		"Method":                       12,
	}
	for typename, want := range expected {
		if counts[typename] != want {
			t.Errorf("Expected %d %s records, got %d", want, typename, counts[typename])
		}
	}

	evidence := counts["Evidence"]
	if evidence < 12 || evidence > 36 {
		t.Errorf("Expected between 12 and 36 Evidence records, got %d", evidence)
	}
	if counts["User"] != evidence {
		t.Errorf("Expected one User per Evidence, got %d users for %d evidence", counts["User"], evidence)
	}

	// Only the Real domain is drawn, so no categorical points appear.
	if counts["LatentTimestampValueCategorical"] != 0 || counts["ObservableTimestampValueCategorical"] != 0 {
		t.Errorf("Expected no categorical timeseries records, got %d/%d",
			counts["LatentTimestampValueCategorical"], counts["ObservableTimestampValueCategorical"])
	}
}

func TestRunForeignKeysReferenceEarlierDocuments(t *testing.T) {
	fake := newFakeClient()
	s := NewSeeder(fake, NewSeededDataGenerator(2))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	fkFields := map[string]map[string]string{
		"Assessment":                   {"project_id": "Project"},
		"LatentVariable":               {"assessment_id": "Assessment"},
		"Badge":                        {"variable_id": "LatentVariable"},
		"LatentTimestampValueReal":     {"variable_id": "LatentVariable"},
		"ObservableTimestampValueReal": {"variable_id": "Observable"},
		"Indicator":                    {"latent_variable_id": "LatentVariable", "observable_id": "Observable"},
		"Method":                       {"observable_id": "Observable"},
		"Evidence":                     {"observable_id": "Observable", "uploaded_by_id": "User"},
	}

	for _, rec := range fake.records {
		for field, parentType := range fkFields[rec.typename] {
			key, ok := rec.fields[field].(string)
			if !ok || key == "" {
				t.Fatalf("%s record missing FK field %s", rec.typename, field)
			}
			issuedAt, ok := fake.keySeq[key]
			if !ok {
				t.Errorf("%s field %s references unknown key %q", rec.typename, field, key)
				continue
			}
			if issuedAt >= rec.seq {
				t.Errorf("%s field %s references key %q issued at %d, not before %d",
					rec.typename, field, key, issuedAt, rec.seq)
			}
			if fake.records[issuedAt].typename != parentType {
				t.Errorf("%s field %s references a %s key, expected %s",
					rec.typename, field, fake.records[issuedAt].typename, parentType)
			}
		}
	}
}

func TestRunPropagatesCreateFailures(t *testing.T) {
	fake := newFakeClient()
	fake.failAfter = 5
	s := NewSeeder(fake, NewSeededDataGenerator(3))

	if err := s.Run(context.Background()); err == nil {
		t.Error("Expected Run to fail when a create fails, got none")
	}
}

func TestLoadSchemaDelegatesToClient(t *testing.T) {
	fake := newFakeClient()
	s := NewSeeder(fake, NewSeededDataGenerator(1))

	if err := s.LoadSchema(context.Background()); err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	if fake.schemaLoads != 1 {
		t.Errorf("Expected 1 schema load, got %d", fake.schemaLoads)
	}
}

func TestCreateGuardsAgainstMissingParents(t *testing.T) {
	fake := newFakeClient()
	s := NewSeeder(fake, NewSeededDataGenerator(1))

	if _, err := s.create(context.Background(), "Assessment", "bae-nonexistent"); err == nil {
		t.Error("Expected error creating Assessment before any Project, got none")
	}
	if len(fake.records) != 0 {
		t.Errorf("Expected no requests to be issued, got %d", len(fake.records))
	}
}

func TestCreateRecordsKeys(t *testing.T) {
	fake := newFakeClient()
	s := NewSeeder(fake, NewSeededDataGenerator(1))

	key, err := s.create(context.Background(), "Project")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	keys := s.CreatedKeys("Project")
	if len(keys) != 1 || keys[0] != key {
		t.Errorf("Expected created keys [%s], got %v", key, keys)
	}
}
