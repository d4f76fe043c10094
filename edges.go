package decision

import "github.com/tidwall/gjson"

// checkEdges validates the edges array and returns its elements. Endpoint
// references are only checked when ix is non-nil.
func (v *Validator) checkEdges(doc gjson.Result, ix *nodeIndex, diags *diagnostics) []gjson.Result {
	edges := member(doc, "edges")
	if !edges.Exists() {
		diags.errorf("Missing required field: 'edges'")
		return nil
	}
	if !edges.IsArray() {
		diags.errorf("'edges' must be an array")
		return nil
	}

	list := edges.Array()
	v.log.Info().Int("count", len(list)).Msgf("Found %d edges", len(list))
	if ix == nil {
		v.log.Warn().Msg("No node ids available, skipping edge reference checks")
	}

	for i, edge := range list {
		name := displayID(edge, i)

		if !member(edge, "id").Exists() {
			diags.errorf("Edge at index %d missing 'id' field", i)
		}

		if src := member(edge, "sourceId"); !src.Exists() {
			diags.errorf("Edge '%s' missing 'sourceId'", name)
		} else if ix != nil && !ix.has(src) {
			diags.errorf("Edge '%s' sourceId '%s' does not match any node id", name, src.String())
		}

		if dst := member(edge, "targetId"); !dst.Exists() {
			diags.errorf("Edge '%s' missing 'targetId'", name)
		} else if ix != nil && !ix.has(dst) {
			diags.errorf("Edge '%s' targetId '%s' does not match any node id", name, dst.String())
		}
	}
	return list
}
