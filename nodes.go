package decision

import (
	"maps"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/tidwall/gjson"
)

// nodeIndex is what the node pass learns for the edge pass.
type nodeIndex struct {
	ids   mapset.Set[string]
	order []string
	all   []gjson.Result
	types map[string]int
}

func (ix *nodeIndex) has(id gjson.Result) bool {
	return ix.ids.Contains(id.String())
}

// checkNodes validates the nodes array. It returns nil when the array is
// absent or not an array, in which case no node ids are known.
func (v *Validator) checkNodes(doc gjson.Result, diags *diagnostics) *nodeIndex {
	nodes := member(doc, "nodes")
	if !nodes.Exists() {
		diags.errorf("Missing required field: 'nodes'")
		return nil
	}
	if !nodes.IsArray() {
		diags.errorf("'nodes' must be an array")
		return nil
	}

	ix := &nodeIndex{
		ids:   mapset.NewThreadUnsafeSet[string](),
		all:   nodes.Array(),
		types: make(map[string]int),
	}
	v.log.Info().Int("count", len(ix.all)).Msgf("Found %d nodes", len(ix.all))

	for i, node := range ix.all {
		v.checkNode(i, node, ix, diags)
	}

	for _, t := range slices.Sorted(maps.Keys(ix.types)) {
		v.log.Debug().Str("type", t).Int("count", ix.types[t]).Msgf("%d x %s", ix.types[t], t)
	}

	if ix.types[NodeTypeInput] == 0 {
		diags.warnf("No inputNode found (recommended to have at least one)")
	} else {
		v.log.Info().Msg("Found inputNode")
	}
	if ix.types[NodeTypeDecisionTable] == 0 {
		diags.warnf("No decisionTableNode found")
	} else {
		v.log.Info().Msg("Found decisionTableNode")
	}
	if ix.types[NodeTypeOutput] == 0 {
		diags.warnf("No outputNode found (recommended to have at least one)")
	} else {
		v.log.Info().Msg("Found outputNode")
	}

	return ix
}

func (v *Validator) checkNode(i int, node gjson.Result, ix *nodeIndex, diags *diagnostics) {
	name := displayID(node, i)

	if id := member(node, "id"); !id.Exists() {
		diags.errorf("Node at index %d missing 'id' field", i)
	} else {
		key := id.String()
		if ix.ids.Contains(key) {
			diags.errorf("Duplicate node id: '%s'", key)
		} else {
			ix.order = append(ix.order, key)
		}
		ix.ids.Add(key)
	}

	typ := member(node, "type")
	if !typ.Exists() {
		diags.errorf("Node '%s' missing 'type' field", name)
	} else {
		if !isKnownNodeType(typ.String()) {
			diags.errorf("Node '%s' has invalid type: '%s'", name, typ.String())
		}
		ix.types[typ.String()]++
	}

	pos := member(node, "position")
	if !pos.Exists() {
		diags.errorf("Node '%s' missing 'position' field", name)
	} else if !pos.IsObject() || !member(pos, "x").Exists() || !member(pos, "y").Exists() {
		diags.errorf("Node '%s' position must have 'x' and 'y' fields", name)
	}

	content := member(node, "content")
	if !content.Exists() {
		diags.errorf("Node '%s' missing 'content' field", name)
		return
	}
	if !typ.Exists() {
		return
	}
	switch typ.String() {
	case NodeTypeInput, NodeTypeOutput:
		checkFields(name, content, diags)
	case NodeTypeDecisionTable:
		v.checkDecisionTable(name, content, diags)
	}
}

func checkFields(name string, content gjson.Result, diags *diagnostics) {
	fields := member(content, "fields")
	if !fields.Exists() {
		diags.errorf("Node '%s' content missing 'fields' array", name)
		return
	}
	if !fields.IsArray() {
		diags.errorf("Node '%s' content.fields must be an array", name)
		return
	}
	for _, f := range fields.Array() {
		fieldName := member(f, "field")
		if !fieldName.Exists() {
			diags.errorf("Field in node '%s' missing 'field' name", name)
		}
		if !member(f, "dataType").Exists() {
			label := "?"
			if fieldName.Exists() {
				label = fieldName.String()
			}
			diags.errorf("Field '%s' in node '%s' missing 'dataType'", label, name)
		}
	}
}

var decisionTableKeys = []string{"hitPolicy", "inputs", "outputs", "rules"}

func (v *Validator) checkDecisionTable(name string, content gjson.Result, diags *diagnostics) {
	for _, key := range decisionTableKeys {
		if !member(content, key).Exists() {
			diags.errorf("Decision table '%s' missing '%s' field", name, key)
		}
	}

	if hp := member(content, "hitPolicy"); hp.Exists() && !isKnownHitPolicy(hp.String()) {
		diags.errorf("Decision table '%s' has invalid hitPolicy: '%s'", name, hp.String())
	}

	if rules := member(content, "rules"); rules.IsArray() {
		n := len(rules.Array())
		v.log.Debug().Str("node", name).Int("rules", n).Msgf("Decision table '%s' has %d rules", name, n)
	}
}
