package decision

import "encoding/json"

// ContentType identifies a GoRules decision graph document.
const ContentType = "application/vnd.gorules.decision"

// Node types accepted by the GoRules editor.
const (
	NodeTypeInput         = "inputNode"
	NodeTypeDecisionTable = "decisionTableNode"
	NodeTypeOutput        = "outputNode"
	NodeTypeExpression    = "expressionNode"
	NodeTypeFunction      = "functionNode"
)

// Decision table hit policies.
const (
	HitPolicyFirst   = "first"
	HitPolicyCollect = "collect"
	HitPolicyUnique  = "unique"
)

// Document is the typed form of a decision graph.
// The validator works on raw bytes and never decodes into it; it exists for
// callers that build documents in code.
type Document struct {
	ContentType string `json:"contentType"`
	Nodes       []Node `json:"nodes"`
	Edges       []Edge `json:"edges"`
}

// Node is a typed unit of the graph. Content shape depends on Type.
type Node struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Name     string          `json:"name,omitempty"`
	Position Position        `json:"position"`
	Content  json.RawMessage `json:"content"`
}

// Position is the editor canvas coordinate of a node.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is a directed connection between two nodes by id.
type Edge struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
	Type     string `json:"type,omitempty"`
}

// Field is one entry of an input or output node's content.
type Field struct {
	ID       string `json:"id,omitempty"`
	Field    string `json:"field"`
	Name     string `json:"name,omitempty"`
	DataType string `json:"dataType"`
}

// FieldsContent is the content of input and output nodes.
type FieldsContent struct {
	Fields []Field `json:"fields"`
}

// DecisionTable is the content of a decision table node.
type DecisionTable struct {
	HitPolicy string            `json:"hitPolicy"`
	Inputs    []json.RawMessage `json:"inputs"`
	Outputs   []json.RawMessage `json:"outputs"`
	Rules     []json.RawMessage `json:"rules"`
}

// NewFieldsNode builds an input or output node from a list of fields.
func NewFieldsNode(id, nodeType string, pos Position, fields ...Field) (Node, error) {
	if fields == nil {
		fields = []Field{}
	}
	content, err := json.Marshal(FieldsContent{Fields: fields})
	if err != nil {
		return Node{}, err
	}
	return Node{ID: id, Type: nodeType, Position: pos, Content: content}, nil
}

// NewDecisionTableNode builds a decision table node. Nil slices are encoded
// as empty arrays so the node passes presence checks.
func NewDecisionTableNode(id string, pos Position, table DecisionTable) (Node, error) {
	if table.Inputs == nil {
		table.Inputs = []json.RawMessage{}
	}
	if table.Outputs == nil {
		table.Outputs = []json.RawMessage{}
	}
	if table.Rules == nil {
		table.Rules = []json.RawMessage{}
	}
	content, err := json.Marshal(table)
	if err != nil {
		return Node{}, err
	}
	return Node{ID: id, Type: NodeTypeDecisionTable, Position: pos, Content: content}, nil
}

// isKnownNodeType reports whether t is one of the editor's node types.
func isKnownNodeType(t string) bool {
	switch t {
	case NodeTypeInput, NodeTypeDecisionTable, NodeTypeOutput, NodeTypeExpression, NodeTypeFunction:
		return true
	}
	return false
}

func isKnownHitPolicy(p string) bool {
	switch p {
	case HitPolicyFirst, HitPolicyCollect, HitPolicyUnique:
		return true
	}
	return false
}
