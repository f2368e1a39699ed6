package schema

// SDL is the GraphQL schema for the impact-assessment graph, in
// DefraDB's SDL dialect. Relation fields on the "one" side hold the
// parent document key; list fields are the inverse side and are
// resolved by the database.
const SDL = `
type Project {
	name: String
	handle: String
	assessments: [Assessment]
}

type Assessment {
	project: Project
	date: DateTime
	latent_variables: [LatentVariable]
}

type LatentVariable {
	assessment: Assessment
	badge: Badge
	name: String
	domain: String
	categories: [String]
	ordered_categorical: Boolean
	timeseries_real: [LatentTimestampValueReal]
	timeseries_categorical: [LatentTimestampValueCategorical]
	indicators: [Indicator]
}

type LatentTimestampValueReal {
	variable: LatentVariable
	timestamp: DateTime
	upper_ci95: Float
	lower_ci95: Float
	median: Float
	sigmoid_negentropy: Float
}

type ObservableTimestampValueReal {
	variable: Observable
	timestamp: DateTime
	upper_ci95: Float
	lower_ci95: Float
	median: Float
	sigmoid_negentropy: Float
}

type LatentTimestampValueCategorical {
	variable: LatentVariable
	timestamp: DateTime
	mode: Int
	sigmoid_negentropy: Float
}

type ObservableTimestampValueCategorical {
	variable: Observable
	timestamp: DateTime
	mode: Int
	sigmoid_negentropy: Float
}

type Indicator {
	latent_variable: LatentVariable
	observable: Observable
	correlation: Float
	mutual_information: Float
}

type Observable {
	indicates: [Indicator]
	domain: String
	name: String
	timeseries_real: [ObservableTimestampValueReal]
	timeseries_categorical: [ObservableTimestampValueCategorical]
	method: Method
	evidence: [Evidence]
}

type Evidence {
	observable: Observable
	uploaded_by: User
	name: String
	asset_url: String
	confidence: Float
	uploaded: DateTime
	location: String
}

type User {
	evidence: [Evidence]
	name: String
	profile_url: String
}

type Method {
	observable: Observable
	name: String
}

type Badge {
	variable: LatentVariable
	name: String
	handle: String
	description: String
	unit: String
	more_is_better: Boolean
	time_unit: String
	badge_threshold: Float
	zero_threshold: Float
	confidence: Float
}
`

// TypeInfo describes one schema type and the types whose documents must
// exist before one of its own can be created (its foreign-key parents).
type TypeInfo struct {
	Name         string
	Dependencies []string
}

// Types returns the registry of all schema types with their creation
// dependencies. The bridge types (Indicator, Evidence) depend on two
// parents; everything else forms a plain tree.
func Types() []TypeInfo {
	return []TypeInfo{
		{Name: "Project"},
		{Name: "Assessment", Dependencies: []string{"Project"}},
		{Name: "LatentVariable", Dependencies: []string{"Assessment"}},
		{Name: "Badge", Dependencies: []string{"LatentVariable"}},
		{Name: "LatentTimestampValueReal", Dependencies: []string{"LatentVariable"}},
		{Name: "LatentTimestampValueCategorical", Dependencies: []string{"LatentVariable"}},
		{Name: "Observable"},
		{Name: "ObservableTimestampValueReal", Dependencies: []string{"Observable"}},
		{Name: "ObservableTimestampValueCategorical", Dependencies: []string{"Observable"}},
		{Name: "Indicator", Dependencies: []string{"LatentVariable", "Observable"}},
		{Name: "Method", Dependencies: []string{"Observable"}},
		{Name: "User"},
		{Name: "Evidence", Dependencies: []string{"Observable", "User"}},
	}
}
