// Package domain contains the core domain models of the template engine.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// GraphNode is one template in the extends graph.
type GraphNode struct {
	// Key is the stable key of the template.
	Key string
	// Parent is the stable key of the template it extends, if any.
	Parent string
}

// Graph is the extends graph of a set of templates.
type Graph struct {
	nodes          map[string]GraphNode
	executionOrder []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]GraphNode),
	}
}

// AddNode adds a node to the graph.
// It returns an error if a node with the same key already exists.
func (g *Graph) AddNode(n GraphNode) error {
	if _, exists := g.nodes[n.Key]; exists {
		return zerr.With(ErrUnitAlreadyExists, "unit", n.Key)
	}
	g.nodes[n.Key] = n
	return nil
}

// Node returns the node with the given key.
func (g *Graph) Node(key string) (GraphNode, bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Validate checks for cycles and missing parents using a topological sort.
// It populates the execution order, parents first, if successful.
func (g *Graph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.nodes))
	visited := make(map[string]int, len(g.nodes)) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(key string) error
	visit = func(key string) error {
		visited[key] = 1
		path = append(path, key)

		n, exists := g.nodes[key]
		if !exists {
			return zerr.With(ErrMissingParent, "parent", key)
		}

		if n.Parent != "" {
			switch visited[n.Parent] {
			case 1:
				return g.buildCycleError(path, n.Parent)
			case 0:
				if err := visit(n.Parent); err != nil {
					return err
				}
			}
		}

		visited[key] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, key)
		return nil
	}

	keys := make([]string, 0, len(g.nodes))
	for key := range g.nodes {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if visited[key] == 0 {
			if err := visit(key); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) buildCycleError(path []string, parent string) error {
	start := slices.Index(path, parent)
	cycle := append(slices.Clone(path[start:]), parent)
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(cycle, " -> "))
}

// Walk yields nodes parents first.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[GraphNode] {
	return func(yield func(GraphNode) bool) {
		for _, key := range g.executionOrder {
			if !yield(g.nodes[key]) {
				return
			}
		}
	}
}

// Waves groups the execution order into batches whose parents are all in earlier batches.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Waves() [][]string {
	depth := make(map[string]int, len(g.executionOrder))
	var waves [][]string
	for _, key := range g.executionOrder {
		d := 0
		if p := g.nodes[key].Parent; p != "" {
			d = depth[p] + 1
		}
		depth[key] = d
		for len(waves) <= d {
			waves = append(waves, nil)
		}
		waves[d] = append(waves[d], key)
	}
	return waves
}
