// File: miniconf/scan.go
package miniconf

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the resolved configuration under basePath into the target,
// which must be a non-nil pointer to a struct or map. Fields map through the
// "json" struct tag with weak typing, so an int value can populate a string
// field and so on. An empty basePath scans the whole configuration.
func (c *Config) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	c.mu.RLock()
	tree := c.exportTree()
	c.mu.RUnlock()

	var section any = tree

	basePath = strings.TrimSuffix(basePath, ".")
	if basePath != "" {
		current := any(tree)
		found := true
		for _, segment := range splitPath(basePath) {
			currentMap, ok := current.(map[string]any)
			if !ok {
				found = false
				break
			}
			value, exists := currentMap[segment]
			if !exists {
				found = false
				break
			}
			current = value
		}
		if found {
			section = current
		} else {
			// Decode an empty section rather than failing on a path that
			// simply has no values yet.
			section = make(map[string]any)
		}
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("configuration path %q does not refer to a scannable section, but to type %T", basePath, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}

	return nil
}
