package main

import (
	"encoding/json"
	"fmt"

	"github.com/conspack-go/conspack/format"
	"github.com/conspack-go/conspack/value"
)

// node is the JSON-described shape of a value.Value, read by the encode
// subcommand. Only the fields relevant to Kind are populated; it mirrors
// value.Value's own "flat struct, kind picks which fields matter" shape
// rather than a discriminated-union of Go types.
type node struct {
	Kind string `json:"kind"`

	Bool bool `json:"bool"`

	Int   int64   `json:"int"`
	Uint  uint64  `json:"uint"`
	Float float64 `json:"float"`

	Str string `json:"str"`

	Children    []node `json:"children"`
	Pairs       [][2]node `json:"pairs"` // for map/tmap: flattened to children
	FixedHeader bool   `json:"fixed_header"`

	Val uint32 `json:"val"` // for ref/tag/index

	Inner *node `json:"inner"`
	Car   *node `json:"car"`
	Cdr   *node `json:"cdr"`
	Name  *node `json:"name"`
	Pkg   *node `json:"package"`

	Numerator   *node `json:"numerator"`
	Denominator *node `json:"denominator"`
	Real        *node `json:"real"`
	Imaginary   *node `json:"imaginary"`
}

// buildValue recursively turns a decoded JSON node into a value.Value tree
// ready for conspack.Encode.
func buildValue(n *node) (*value.Value, error) {
	if n == nil {
		return nil, fmt.Errorf("conspack: missing value node")
	}

	switch n.Kind {
	case "bool":
		return value.NewBool(n.Bool), nil

	case "int8":
		return value.NewInt(format.NumInt8, n.Int), nil
	case "int16":
		return value.NewInt(format.NumInt16, n.Int), nil
	case "int32":
		return value.NewInt(format.NumInt32, n.Int), nil
	case "int64":
		return value.NewInt(format.NumInt64, n.Int), nil
	case "uint8":
		return value.NewUint(format.NumUInt8, n.Uint), nil
	case "uint16":
		return value.NewUint(format.NumUInt16, n.Uint), nil
	case "uint32":
		return value.NewUint(format.NumUInt32, n.Uint), nil
	case "uint64":
		return value.NewUint(format.NumUInt64, n.Uint), nil
	case "single_float":
		return value.NewSingleFloat(float32(n.Float)), nil
	case "double_float":
		return value.NewDoubleFloat(n.Float), nil

	case "string":
		return value.NewString([]byte(n.Str)), nil

	case "vector", "list":
		return buildContainer(n, vectorOrList(n.Kind))

	case "map":
		return buildMap(n, format.ContainerKindMap)
	case "tmap":
		return buildMap(n, format.ContainerKindTypedMap)

	case "ref":
		return value.NewRef(n.Val), nil
	case "tag":
		return value.NewTag(n.Val), nil
	case "index":
		return value.NewIndex(n.Val), nil

	case "remote_ref":
		inner, err := buildValue(n.Inner)
		if err != nil {
			return nil, err
		}
		return value.NewRemoteRef(inner), nil

	case "cons":
		car, err := buildValue(n.Car)
		if err != nil {
			return nil, err
		}
		cdr, err := buildValue(n.Cdr)
		if err != nil {
			return nil, err
		}
		return value.NewCons(car, cdr), nil

	case "package":
		name, err := buildValue(n.Name)
		if err != nil {
			return nil, err
		}
		return value.NewPackage(name), nil

	case "symbol":
		name, err := buildValue(n.Name)
		if err != nil {
			return nil, err
		}
		pkg, err := buildValue(n.Pkg)
		if err != nil {
			return nil, err
		}
		return value.NewSymbol(pkg, name), nil

	case "keyword":
		name, err := buildValue(n.Name)
		if err != nil {
			return nil, err
		}
		return value.NewKeyword(name), nil

	case "rational":
		num, err := buildValue(n.Numerator)
		if err != nil {
			return nil, err
		}
		den, err := buildValue(n.Denominator)
		if err != nil {
			return nil, err
		}
		return value.NewRational(num, den), nil

	case "complex":
		re, err := buildValue(n.Real)
		if err != nil {
			return nil, err
		}
		im, err := buildValue(n.Imaginary)
		if err != nil {
			return nil, err
		}
		return value.NewComplex(re, im), nil

	default:
		return nil, fmt.Errorf("conspack: unknown value kind %q", n.Kind)
	}
}

func vectorOrList(kind string) format.ContainerSubtypeKind {
	if kind == "list" {
		return format.ContainerKindList
	}
	return format.ContainerKindVector
}

func buildContainer(n *node, subtype format.ContainerSubtypeKind) (*value.Value, error) {
	children := make([]*value.Value, 0, len(n.Children))
	for i := range n.Children {
		child, err := buildValue(&n.Children[i])
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return containerWithOptionalFixedHeader(subtype, children, n.FixedHeader), nil
}

func buildMap(n *node, subtype format.ContainerSubtypeKind) (*value.Value, error) {
	children := make([]*value.Value, 0, 2*len(n.Pairs))
	for _, pair := range n.Pairs {
		k, err := buildValue(&pair[0])
		if err != nil {
			return nil, err
		}
		v, err := buildValue(&pair[1])
		if err != nil {
			return nil, err
		}
		children = append(children, k, v)
	}
	return containerWithOptionalFixedHeader(subtype, children, n.FixedHeader), nil
}

// containerWithOptionalFixedHeader builds a Container. When fixed is
// requested, the shared element header is taken from the first child
// (all children must already share one header, or encoding fails later).
func containerWithOptionalFixedHeader(subtype format.ContainerSubtypeKind, children []*value.Value, fixed bool) *value.Value {
	if fixed && len(children) > 0 {
		return value.NewContainer(subtype, children, children[0].Header, true)
	}
	return value.NewContainer(subtype, children, 0, false)
}

// decodeNode parses the JSON value description read by the encode
// subcommand.
func decodeNode(data []byte) (*node, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("conspack: invalid value description: %w", err)
	}
	return &n, nil
}
