package schema

import "testing"

func TestCreationOrderIncludesEveryType(t *testing.T) {
	order, err := CreationOrder()
	if err != nil {
		t.Fatalf("Failed to build creation order: %v", err)
	}

	if len(order) != len(Types()) {
		t.Fatalf("Expected %d types in creation order, got %d", len(Types()), len(order))
	}

	seen := make(map[string]bool)
	for _, name := range order {
		if seen[name] {
			t.Errorf("Type %s appears twice in creation order", name)
		}
		seen[name] = true
	}
}

func TestCreationOrderRespectsDependencies(t *testing.T) {
	order, err := CreationOrder()
	if err != nil {
		t.Fatalf("Failed to build creation order: %v", err)
	}

	position := make(map[string]int)
	for i, name := range order {
		position[name] = i
	}

	for _, info := range Types() {
		for _, dep := range info.Dependencies {
			depPos, ok := position[dep]
			if !ok {
				t.Fatalf("Dependency %s of %s missing from creation order", dep, info.Name)
			}
			if depPos >= position[info.Name] {
				t.Errorf("Expected %s before %s, got positions %d and %d", dep, info.Name, depPos, position[info.Name])
			}
		}
	}
}

func TestBuildCreationOrderDetectsCycles(t *testing.T) {
	graph := NewDependencyGraph()
	graph.AddType(TypeInfo{Name: "A", Dependencies: []string{"B"}})
	graph.AddType(TypeInfo{Name: "B", Dependencies: []string{"A"}})

	if _, err := graph.BuildCreationOrder(); err == nil {
		t.Error("Expected circular dependency error, got none")
	}
}

func TestSelfReferenceIsSkipped(t *testing.T) {
	graph := NewDependencyGraph()
	graph.AddType(TypeInfo{Name: "Node", Dependencies: []string{"Node"}})

	order, err := graph.BuildCreationOrder()
	if err != nil {
		t.Fatalf("Expected self-reference to be skipped, got error: %v", err)
	}
	if len(order) != 1 || order[0] != "Node" {
		t.Errorf("Expected order [Node], got %v", order)
	}
}
