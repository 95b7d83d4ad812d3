package jsonpatch

import (
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Operation is a single RFC 6902 operation.
type Operation struct {
	Op    string
	Path  string
	Value any
}

// MarshalJSON omits value only for remove, so replacing with null survives.
func (o Operation) MarshalJSON() ([]byte, error) {
	if o.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	return json.Marshal(struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}{o.Op, o.Path, o.Value})
}

// Between encodes a and b as JSON and returns the forward (a→b) and backward
// (b→a) patches. An unchanged document yields "[]" both ways.
func Between(a, b any) (fwd, bwd json.RawMessage, err error) {
	ga, err := generic(a)
	if err != nil {
		return nil, nil, err
	}
	gb, err := generic(b)
	if err != nil {
		return nil, nil, err
	}
	f, r := DiffBoth(ga, gb, "")
	if fwd, err = marshalOps(f); err != nil {
		return nil, nil, err
	}
	if bwd, err = marshalOps(r); err != nil {
		return nil, nil, err
	}
	return fwd, bwd, nil
}

func generic(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func marshalOps(ops []Operation) (json.RawMessage, error) {
	if len(ops) == 0 {
		return json.RawMessage("[]"), nil
	}
	return json.Marshal(ops)
}

// Diff computes the patch that transforms a into b. Both must be generic JSON
// values (maps, slices, scalars). Path is "" for the document root.
func Diff(a, b any, path string) []Operation {
	fwd, _ := DiffBoth(a, b, path)
	return fwd
}

// DiffBoth computes the forward and backward patches in one traversal.
// Object keys are visited in sorted order so output is deterministic.
func DiffBoth(a, b any, path string) (fwd, bwd []Operation) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil || b == nil {
		return []Operation{replaceOp(path, b)}, []Operation{replaceOp(path, a)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Operation{replaceOp(path, b)}, []Operation{replaceOp(path, a)}
	}
	return nil, nil
}

func diffObjects(a, b map[string]any, path string) (fwd, bwd []Operation) {
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			childPath := path + "/" + escapeKey(k)
			fwd = append(fwd, removeOp(childPath))
			bwd = append(bwd, addOp(childPath, a[k]))
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			fwd = append(fwd, addOp(childPath, b[k]))
			bwd = append(bwd, removeOp(childPath))
			continue
		}
		subFwd, subBwd := DiffBoth(av, b[k], childPath)
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}
	return fwd, bwd
}

func diffArrays(a, b []any, path string) (fwd, bwd []Operation) {
	common := min(len(a), len(b))

	for i := 0; i < common; i++ {
		subFwd, subBwd := DiffBoth(a[i], b[i], path+"/"+strconv.Itoa(i))
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}

	// Removals run from the end so earlier indices stay valid.
	for i := len(a) - 1; i >= common; i-- {
		fwd = append(fwd, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := common; i < len(a); i++ {
		bwd = append(bwd, addOp(path+"/"+strconv.Itoa(i), a[i]))
	}

	for i := common; i < len(b); i++ {
		fwd = append(fwd, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}
	for i := len(b) - 1; i >= common; i-- {
		bwd = append(bwd, removeOp(path+"/"+strconv.Itoa(i)))
	}
	return fwd, bwd
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func replaceOp(path string, value any) Operation {
	return Operation{Op: "replace", Path: path, Value: value}
}

func addOp(path string, value any) Operation {
	return Operation{Op: "add", Path: path, Value: value}
}

func removeOp(path string) Operation {
	return Operation{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
