// File: miniconf/merge.go
package miniconf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Path is the ordered segment form of a dotted flag such as "part1.value2".
// The engine works on Paths internally and only renders dotted text at the
// boundary.
type Path []string

// splitPath parses dotted text into a Path.
func splitPath(flag string) Path {
	return Path(strings.Split(flag, "."))
}

// String renders the path in dotted form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// exportTree converts the resolved values into a nested tree keyed by path
// segments, with native Go scalars at the leaves. Hidden options are left
// out. Callers must hold the mutex.
func (c *Config) exportTree() map[string]any {
	tree := make(map[string]any)
	for _, key := range c.sortedKeys() {
		if opt, ok := c.options[key]; ok && opt.hidden {
			continue
		}
		setTreeValue(tree, splitPath(key), c.values[key].native())
	}
	return tree
}

// setTreeValue descends the tree along the path, creating intermediate
// objects as needed, and sets the leaf. A non-object node in the way is
// replaced by an object.
func setTreeValue(tree map[string]any, path Path, value any) {
	current := tree
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}

// flattenTree converts a nested tree back into dotted-key leaves.
func flattenTree(tree map[string]any, prefix Path) map[string]any {
	flat := make(map[string]any)
	for key, node := range tree {
		path := append(append(Path{}, prefix...), key)
		if sub, ok := node.(map[string]any); ok {
			for subKey, subNode := range flattenTree(sub, path) {
				flat[subKey] = subNode
			}
			continue
		}
		flat[path.String()] = node
	}
	return flat
}

// mergeTree flattens a parsed file tree and records each leaf into the
// resolved values, coercing against the registry. A bad leaf is logged and
// reported without stopping its siblings. Callers must hold the mutex.
func (c *Config) mergeTree(tree map[string]any) error {
	var firstErr error
	flat := flattenTree(tree, nil)

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v, err := c.importLeaf(key, flat[key])
		if err != nil {
			c.logf(LogWarning, key, "skipping file value: %v", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		c.values[key] = v
	}
	return firstErr
}

// importLeaf types one file-provided leaf. A declared key coerces numbers to
// the declared kind (Int when declared Int, Float otherwise); an undeclared
// stray key infers its type from the node itself, with numbers becoming
// floats.
func (c *Config) importLeaf(key string, node any) (Value, error) {
	opt := c.options[key]

	asNumber := func(f float64) Value {
		if opt != nil && opt.Type() == KindInt {
			return NewInt(int64(f))
		}
		return NewFloat(f)
	}

	switch n := node.(type) {
	case bool:
		return NewBool(n), nil
	case string:
		return NewString(n), nil
	case json.Number:
		if opt != nil && opt.Type() == KindInt {
			if i, err := n.Int64(); err == nil {
				return NewInt(i), nil
			}
		}
		f, err := n.Float64()
		if err != nil {
			return Unknown(), fmt.Errorf("unparseable number %q", n.String())
		}
		return asNumber(f), nil
	case int:
		return asNumber(float64(n)), nil
	case int64:
		if opt != nil && opt.Type() == KindInt {
			return NewInt(n), nil
		}
		return NewFloat(float64(n)), nil
	case float64:
		return asNumber(n), nil
	case nil:
		return Unknown(), fmt.Errorf("null value")
	default:
		return Unknown(), fmt.Errorf("unsupported value of type %T", node)
	}
}
