package seeder

// Walk shape. The counts are fixed on purpose: the dataset is a
// demonstration fixture, not a load generator.
const (
	assessmentsPerProject  = 2
	variablesPerAssessment = 2
	timeseriesPerVariable  = 3
	indicatorsPerVariable  = 3
	minEvidencePerObs      = 1
	maxEvidencePerObs      = 3
)

// Domains a variable or observable can be generated in. The original
// dataset only draws Real; the Categorical branch is kept so the
// timeseries dispatch stays exercised by tests.
var variableDomains = []string{"Real"}

// Kind selects which side of the schema a timeseries point belongs to.
type Kind string

const (
	KindLatentVariable Kind = "LatentVariable"
	KindObservable     Kind = "Observable"
)
