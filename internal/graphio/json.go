// Package graphio holds the external-adapter concerns kept out of the
// core engine: decoding a branching reference from JSON and reading a
// query from FASTA (github.com/biogo/biogo/io/seqio/fasta), using
// tagged error types in the same style as the rest of this module.
package graphio

import (
	"encoding/json"
	"fmt"

	"github.com/aria-lang/graphaligner-go/internal/graphaln"
	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// GraphError is the common marker for every error the graph loader can
// raise.
type GraphError interface {
	error
	IsGraphError()
}

// BadJsonElement is returned for an object that names none of
// "seq"/"branch"/"dist".
type BadJsonElement struct{ Raw string }

func (e *BadJsonElement) Error() string {
	return fmt.Sprintf("graphio: object has none of seq/branch/dist: %s", e.Raw)
}
func (e *BadJsonElement) IsGraphError() {}

// StringExpected is returned when a graph element is a JSON value that
// is neither a string, an array, nor an object (e.g. a bare number).
type StringExpected struct{ Raw string }

func (e *StringExpected) Error() string {
	return fmt.Sprintf("graphio: expected string, array, or object, got: %s", e.Raw)
}
func (e *StringExpected) IsGraphError() {}

// Ambiguous is returned when an object names more than one of
// "seq"/"branch"/"dist".
type Ambiguous struct{ Raw string }

func (e *Ambiguous) Error() string {
	return fmt.Sprintf("graphio: object names more than one of seq/branch/dist: %s", e.Raw)
}
func (e *Ambiguous) IsGraphError() {}

// Unsupported is returned for a "dist" element: the probability-matrix
// branch of the reference model has no aligner behind it yet.
type Unsupported struct{ Raw string }

func (e *Unsupported) Error() string {
	return fmt.Sprintf("graphio: \"dist\" elements are not supported: %s", e.Raw)
}
func (e *Unsupported) IsGraphError() {}

type jsonObject struct {
	ID     *string          `json:"id"`
	Seq    *string          `json:"seq"`
	Branch []json.RawMessage `json:"branch"`
	Dist   json.RawMessage  `json:"dist"`
}

// LoadGraph decodes raw JSON bytes into a SeqGraph per the grammar: a
// JSON value is a string (Frag), an array (a linear chain of
// sub-elements), or an object naming exactly one of seq/branch/dist.
// Node ids are assigned in construction order as decoding proceeds.
func LoadGraph(data []byte) (*graphaln.SeqGraph, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	b := graphaln.NewBuilder()
	root, err := decode(b, raw)
	if err != nil {
		return nil, err
	}
	return b.Graph(root), nil
}

func decode(b *graphaln.Builder, raw json.RawMessage) (*graphaln.Node, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		seq, err := seqgraph.New(s)
		if err != nil {
			return nil, err
		}
		return b.Frag(seq, nil), nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return decodeChain(b, arr)
	}

	var obj jsonObject
	if err := json.Unmarshal(raw, &obj); err == nil && looksLikeObject(raw) {
		return decodeObject(b, obj, raw)
	}

	return nil, &StringExpected{Raw: string(raw)}
}

// looksLikeObject guards against json.Unmarshal happily decoding a
// bare string or array into jsonObject's zero value (it wouldn't — all
// fields would stay nil/zero — but a literal `null` also unmarshals
// into the zero value without error, so check the raw
// token shape explicitly).
func looksLikeObject(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func decodeChain(b *graphaln.Builder, arr []json.RawMessage) (*graphaln.Node, error) {
	if len(arr) == 0 {
		return nil, nil
	}
	nodes := make([]*graphaln.Node, 0, len(arr))
	for _, elem := range arr {
		n, err := decode(b, elem)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	for i := len(nodes) - 2; i >= 0; i-- {
		attachTail(nodes[i], nodes[i+1])
	}
	return nodes[0], nil
}

// attachTail splices next onto the end of head's chain. head is always
// a freshly built node decoded independently of next (array elements
// are stitched together here), so this never overwrites an existing
// link. If head is a Branch, every member shares the same successor,
// so the splice recurses into each member's own tail rather than
// attaching to the Branch node itself, which has no Next of its own.
func attachTail(head, next *graphaln.Node) {
	if head == nil {
		return
	}
	if head.IsBranch {
		for _, m := range head.Members {
			attachTail(m, next)
		}
		return
	}
	cur := head
	for cur.Next != nil {
		cur = cur.Next
	}
	cur.Next = next
}

func decodeObject(b *graphaln.Builder, obj jsonObject, raw json.RawMessage) (*graphaln.Node, error) {
	count := 0
	if obj.Seq != nil {
		count++
	}
	if obj.Branch != nil {
		count++
	}
	if obj.Dist != nil {
		count++
	}
	switch {
	case count == 0:
		return nil, &BadJsonElement{Raw: string(raw)}
	case count > 1:
		return nil, &Ambiguous{Raw: string(raw)}
	}

	var node *graphaln.Node
	switch {
	case obj.Seq != nil:
		seq, err := seqgraph.New(*obj.Seq)
		if err != nil {
			return nil, err
		}
		node = b.Frag(seq, nil)
	case obj.Branch != nil:
		members := make([]*graphaln.Node, 0, len(obj.Branch))
		for _, m := range obj.Branch {
			mn, err := decode(b, m)
			if err != nil {
				return nil, err
			}
			members = append(members, mn)
		}
		node = b.Branch(members...)
	case obj.Dist != nil:
		return nil, &Unsupported{Raw: string(raw)}
	}

	if obj.ID != nil {
		b.Name(node.ID, *obj.ID)
	}
	return node, nil
}
