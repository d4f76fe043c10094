package decision

import (
	"strings"

	"github.com/tidwall/gjson"
)

// narrateCycle logs an advisory when the well-formed edges loop back on
// themselves. The editor accepts such graphs, so this is never a diagnostic.
func (v *Validator) narrateCycle(ix *nodeIndex, edges []gjson.Result) {
	adj := make(map[string][]string)
	for _, e := range edges {
		src, dst := member(e, "sourceId"), member(e, "targetId")
		if !src.Exists() || !dst.Exists() || !ix.has(src) || !ix.has(dst) {
			continue
		}
		adj[src.String()] = append(adj[src.String()], dst.String())
	}

	if cycle := findCycle(ix.order, adj); cycle != nil {
		v.log.Warn().Strs("cycle", cycle).Msgf("Edges form a cycle: %s", strings.Join(cycle, " -> "))
	}
}

// findCycle runs a DFS over adj, visiting roots in the given order, and
// returns the first cycle found as a closed path, or nil.
func findCycle(order []string, adj map[string][]string) []string {
	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)

	state := make(map[string]int, len(order))
	var path []string

	var dfs func(id string) []string
	dfs = func(id string) []string {
		state[id] = visiting
		path = append(path, id)
		for _, next := range adj[id] {
			switch state[next] {
			case visiting:
				for i, p := range path {
					if p == next {
						return append(append([]string{}, path[i:]...), next)
					}
				}
			case unvisited:
				if c := dfs(next); c != nil {
					return c
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = visited
		return nil
	}

	for _, id := range order {
		if state[id] == unvisited {
			if c := dfs(id); c != nil {
				return c
			}
		}
	}
	return nil
}
