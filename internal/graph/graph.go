// Package graph implements GraphAnalyzer: reference counts, usage
// reachability, cycle enumeration, critical-path approximation, and
// fan-in/fan-out/coupling, computed as pure functions over a node set and
// a deduplicated edge list. Cycle detection is grounded on the teacher's
// detectCircularDeps (DFS with white/gray/black coloring); critical path
// and coupling are new but follow the same DFS-over-adjacency shape.
package graph

import (
	"sort"
	"strings"

	"github.com/ingo-eichhorst/projectmap/pkg/types"
)

// NodeKind distinguishes a real project file from a synthetic marker node.
// ClassifyNode maps an edge endpoint string to a tagged Node. Analyze does
// not use it: it restricts cycle detection and critical-path analysis to
// the Project subgraph by keeping only edges whose endpoints are both in
// the file set.
type NodeKind int

const (
	NodeProject NodeKind = iota
	NodeExternal
	NodeMissing
	NodeDatabase
)

// Node is the tagged-variant representation of a graph endpoint: a real
// project path, or one of the three synthetic marker kinds.
type Node struct {
	Kind NodeKind
	Key  string
}

// ClassifyNode inspects a Dependency endpoint string and returns its
// tagged Node. Project paths pass through unchanged; synthetic markers are
// unwrapped to their inner value.
func ClassifyNode(raw string) Node {
	switch {
	case strings.HasPrefix(raw, "[External] "):
		return Node{Kind: NodeExternal, Key: strings.TrimPrefix(raw, "[External] ")}
	case strings.HasPrefix(raw, "[Missing] "):
		return Node{Kind: NodeMissing, Key: strings.TrimPrefix(raw, "[Missing] ")}
	case strings.HasPrefix(raw, "[DB:") && strings.HasSuffix(raw, "]"):
		return Node{Kind: NodeDatabase, Key: strings.TrimSuffix(strings.TrimPrefix(raw, "[DB:"), "]")}
	default:
		return Node{Kind: NodeProject, Key: raw}
	}
}

// Result is the full set of metrics GraphAnalyzer produces over one edge
// list. IsUsed is keyed by project file path; ReferenceCount, FanIn and
// FanOut are keyed by edge endpoint, so they also hold synthetic marker
// strings such as "[External] lodash".
type Result struct {
	ReferenceCount map[string]int
	IsUsed         map[string]bool
	FanIn          map[string]int
	FanOut         map[string]int
	Cycles         [][]string
	CriticalPath   []string
	Coupling       int
	AverageCoupling float64
}

// Analyze computes every GraphAnalyzer metric over files (the flattened
// supported-file paths, forming the node universe N) and deps (the
// deduplicated edge list E). It reads nothing but its arguments.
func Analyze(files []*types.FileNode, deps []types.Dependency) Result {
	nodes := make(map[string]bool, len(files))
	for _, f := range files {
		if !f.IsDirectory {
			nodes[f.Path] = true
		}
	}

	refCount := make(map[string]int)
	fanIn := make(map[string]int)
	fanOut := make(map[string]int)
	sources := make(map[string]bool)
	sinks := make(map[string]bool)

	projectAdjacency := make(map[string][]string)

	for _, d := range deps {
		sources[d.From] = true
		sinks[d.To] = true
		refCount[d.To]++
		fanOut[d.From]++
		fanIn[d.To]++

		if nodes[d.From] && nodes[d.To] {
			projectAdjacency[d.From] = append(projectAdjacency[d.From], d.To)
		}
	}

	isUsed := make(map[string]bool, len(nodes))
	for path := range nodes {
		isUsed[path] = sources[path] || sinks[path]
	}

	coupling := 0
	for path := range nodes {
		coupling += fanOut[path]
	}
	avgCoupling := 0.0
	if len(nodes) > 0 {
		avgCoupling = float64(coupling) / float64(len(nodes))
	}

	for path := range projectAdjacency {
		sort.Strings(projectAdjacency[path])
	}

	return Result{
		ReferenceCount:  refCount,
		IsUsed:          isUsed,
		FanIn:           fanIn,
		FanOut:          fanOut,
		Cycles:          detectCycles(nodes, projectAdjacency),
		CriticalPath:    criticalPath(nodes, projectAdjacency),
		Coupling:        coupling,
		AverageCoupling: avgCoupling,
	}
}

const (
	white = iota
	gray
	black
)

// detectCycles runs DFS with node coloring over the Project subgraph only
// (synthetic markers are never part of adjacency, by construction of the
// caller). A back-edge to a gray node closes a cycle; cycles are
// deduplicated by the unordered, lexicographically sorted, "-"-joined set
// of their participating nodes, so rotations of the same cycle collapse to
// one report.
func detectCycles(nodes map[string]bool, adjacency map[string][]string) [][]string {
	color := make(map[string]int, len(nodes))
	for n := range nodes {
		color[n] = white
	}
	parent := make(map[string]string)
	seenKeys := make(map[string]bool)
	var cycles [][]string

	var order []string
	for n := range nodes {
		order = append(order, n)
	}
	sort.Strings(order)

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, neighbor := range adjacency[node] {
			switch color[neighbor] {
			case white:
				parent[neighbor] = node
				dfs(neighbor)
			case gray:
				cycle := reconstructCycle(node, neighbor, parent)
				key := canonicalKey(cycle)
				if !seenKeys[key] {
					seenKeys[key] = true
					cycles = append(cycles, cycle)
				}
			}
		}
		color[node] = black
	}

	for _, n := range order {
		if color[n] == white {
			dfs(n)
		}
	}
	return cycles
}

func reconstructCycle(current, cycleStart string, parent map[string]string) []string {
	cycle := []string{cycleStart}
	cur := current
	for cur != cycleStart {
		cycle = append(cycle, cur)
		cur = parent[cur]
	}
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	return cycle
}

func canonicalKey(cycle []string) string {
	sorted := append([]string(nil), cycle...)
	sort.Strings(sorted)
	return strings.Join(sorted, "-")
}

// criticalPath approximates the longest simple path in the Project
// subgraph: from every node, a DFS explores with a path-local visited set,
// tracking the longest path seen so far. Ties are broken by first-found.
// This is deliberately not a guaranteed-optimal longest-path solver (that
// problem is NP-hard); it is the same approximation the teacher's
// dependency-depth heuristics use.
func criticalPath(nodes map[string]bool, adjacency map[string][]string) []string {
	var order []string
	for n := range nodes {
		order = append(order, n)
	}
	sort.Strings(order)

	var best []string

	var dfs func(node string, visited map[string]bool, path []string)
	dfs = func(node string, visited map[string]bool, path []string) {
		path = append(path, node)
		if len(path) > len(best) {
			best = append([]string(nil), path...)
		}
		for _, neighbor := range adjacency[node] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			dfs(neighbor, visited, path)
			delete(visited, neighbor)
		}
	}

	for _, start := range order {
		visited := map[string]bool{start: true}
		dfs(start, visited, nil)
	}
	return best
}
