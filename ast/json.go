package ast

import "encoding/json"

// The JSON form of a tree is a stable wire contract for callers that
// serialize parse results: every node has a "type" discriminant and
// "start"/"end" offsets, operator nodes have the operator's display "name"
// and a "children" list, literals a "value", and variables a "name".

func (n *Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Value float64  `json:"value"`
		Start int      `json:"start"`
		End   int      `json:"end"`
	}{n.Type(), n.Value, n.span.Start, n.span.End})
}

func (n *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Name  string   `json:"name"`
		Start int      `json:"start"`
		End   int      `json:"end"`
	}{n.Type(), n.Name, n.span.Start, n.span.End})
}

type opJSON struct {
	Type     NodeType `json:"type"`
	Name     string   `json:"name"`
	Children []Node   `json:"children"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
}

func (n *UnaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(opJSON{
		Type:     n.Type(),
		Name:     n.Op.Name,
		Children: []Node{n.X},
		Start:    n.span.Start,
		End:      n.span.End,
	})
}

func (n *BinaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(opJSON{
		Type:     n.Type(),
		Name:     n.Op.Name,
		Children: []Node{n.Left, n.Right},
		Start:    n.span.Start,
		End:      n.span.End,
	})
}

func (n *FunctionOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(opJSON{
		Type:     n.Type(),
		Name:     n.Op.Name,
		Children: n.Args,
		Start:    n.span.Start,
		End:      n.span.End,
	})
}
