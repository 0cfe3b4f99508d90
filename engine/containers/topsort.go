package containers

import "errors"

// ErrCyclicGraph is returned by Sort when the graph contains at least one
// cycle and no topological order exists.
var ErrCyclicGraph = errors.New("graph contains a cycle")

// TopSorter orders the vertices of a directed graph using Kahn's algorithm:
// for every edge uv from vertex u to vertex v, u comes before v in the
// resulting order. When several vertices are simultaneously free of incoming
// edges, the order among them is unspecified; callers must not rely on a
// particular tie-break.
type TopSorter[T comparable] struct {
	// Vertices with no remaining incoming edges, in insertion order.
	isolated []T
	present  map[T]bool

	// Outgoing edges per source vertex. Duplicates are allowed.
	edges     map[T][]T
	edgeCount int

	// Number of incoming edges per vertex.
	incoming map[T]int
}

func NewTopSorter[T comparable]() *TopSorter[T] {
	return &TopSorter[T]{
		present:  make(map[T]bool),
		edges:    make(map[T][]T),
		incoming: make(map[T]int),
	}
}

// AddVertex introduces a vertex. A vertex that already carries incoming
// edges keeps them; adding it again is a no-op.
func (s *TopSorter[T]) AddVertex(vertex T) {
	if s.present[vertex] {
		return
	}
	s.present[vertex] = true
	if s.incoming[vertex] == 0 {
		s.isolated = append(s.isolated, vertex)
	}
}

// AddVertices introduces all given vertices.
func (s *TopSorter[T]) AddVertices(vertices []T) {
	for _, vertex := range vertices {
		s.AddVertex(vertex)
	}
}

// AddEdge records that source must come before target. Vertices never
// introduced through AddVertex are implicitly known through their edges,
// but a source that is only ever a target of edges itself will surface as
// part of a cycle in Sort.
func (s *TopSorter[T]) AddEdge(source, target T) {
	// The target now has an incoming edge, so it is no longer isolated.
	for i, vertex := range s.isolated {
		if vertex == target {
			s.isolated = append(s.isolated[:i], s.isolated[i+1:]...)
			break
		}
	}
	s.edges[source] = append(s.edges[source], target)
	s.edgeCount++
	s.incoming[target]++
}

// Sort consumes the graph and returns a topological order of its vertices.
// It fails with ErrCyclicGraph when edges remain after all isolated
// vertices have been drained, which means the graph contains a cycle.
func (s *TopSorter[T]) Sort() ([]T, error) {
	sorted := make([]T, 0, len(s.present))
	for len(s.isolated) > 0 {
		vertex := s.isolated[0]
		s.isolated = s.isolated[1:]
		sorted = append(sorted, vertex)
		for _, dependent := range s.edges[vertex] {
			s.incoming[dependent]--
			if s.incoming[dependent] == 0 {
				s.isolated = append(s.isolated, dependent)
			}
		}
		s.edgeCount -= len(s.edges[vertex])
		delete(s.edges, vertex)
	}
	if s.edgeCount > 0 {
		return nil, ErrCyclicGraph
	}
	return sorted, nil
}
