package schema

import "fmt"

// DependencyGraph orders schema types so that every type's foreign-key
// parents come before it.
type DependencyGraph struct {
	types map[string]TypeInfo
	order []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		types: make(map[string]TypeInfo),
	}
}

func (g *DependencyGraph) AddType(info TypeInfo) {
	g.types[info.Name] = info
}

// BuildCreationOrder returns a topological ordering of the registered
// types. It errors on cycles, which cannot occur in the shipped schema
// but would break the seeder silently if introduced.
func (g *DependencyGraph) BuildCreationOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving type: %s", name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		if info, ok := g.types[name]; ok {
			for _, dep := range info.Dependencies {
				if dep != name {
					if err := visit(dep); err != nil {
						return err
					}
				}
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	// Iterate the registry slice order rather than the map to keep the
	// result stable across runs.
	for _, info := range Types() {
		if _, ok := g.types[info.Name]; !ok {
			continue
		}
		if !visited[info.Name] {
			if err := visit(info.Name); err != nil {
				return nil, err
			}
		}
	}
	for name := range g.types {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) Order() []string {
	return g.order
}

// CreationOrder builds the creation order for the full shipped schema.
func CreationOrder() ([]string, error) {
	graph := NewDependencyGraph()
	for _, info := range Types() {
		graph.AddType(info)
	}
	return graph.BuildCreationOrder()
}
