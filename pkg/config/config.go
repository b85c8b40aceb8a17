// Package config builds block trees from declarative plain data. The
// nested dict/list schema is the exchange format for block definitions;
// YAML and JSON documents decode to the same shapes and round-trip
// semantically. Unrecognized shapes fail immediately with a description
// of the offending value.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/somesortofme/gmsh-scripts/pkg/block"
)

// Load reads a block definition from a YAML (.yaml, .yml) or JSON
// (.json) file.
func Load(path string) (*block.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported definition format %q", ext)
	}
}

// ParseYAML builds a block tree from a YAML document.
func ParseYAML(data []byte) (*block.Block, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return FromMap(m, nil)
}

// ParseJSON builds a block tree from a JSON document.
func ParseJSON(data []byte) (*block.Block, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return FromMap(m, nil)
}

// FromMap builds a block (and its children, recursively) from decoded
// plain data. parent supplies the anchor for block-relative transforms
// and may be nil for a root definition.
func FromMap(m map[string]any, parent *block.Block) (*block.Block, error) {
	if m["matrix"] != nil {
		return fromMatrix(m, parent)
	}

	var opts []block.Option

	points, err := parsePoints(m["points"])
	if err != nil {
		return nil, err
	}
	opts = append(opts, block.WithPoints(points))

	curves, err := parseCurves(m["curves"])
	if err != nil {
		return nil, err
	}
	if curves != nil {
		opts = append(opts, block.WithCurves(curves))
	}

	surfaces, err := parseSurfaces(m["surfaces"])
	if err != nil {
		return nil, err
	}
	if surfaces != nil {
		opts = append(opts, block.WithSurfaces(surfaces))
	}

	volumes, err := parseVolumes(m["volumes"])
	if err != nil {
		return nil, err
	}
	if volumes != nil {
		opts = append(opts, block.WithVolumes(volumes))
	}

	transforms, err := parseTransforms(m["transforms"], parent)
	if err != nil {
		return nil, err
	}
	if transforms != nil {
		opts = append(opts, block.WithTransforms(transforms...))
	}

	if opt, err := parseZoneOption(m["zone"]); err != nil {
		return nil, err
	} else if opt != nil {
		opts = append(opts, opt)
	}

	if opt, err := parseStructureOption(m["structure"]); err != nil {
		return nil, err
	} else if opt != nil {
		opts = append(opts, opt)
	}

	if m["quadrate"] != nil {
		q, ok := asBool(m["quadrate"])
		if !ok {
			return nil, fmt.Errorf("quadrate: expected a boolean, got %v", m["quadrate"])
		}
		if q {
			opts = append(opts, block.WithQuadrate())
		}
	}

	if m["structure_type"] != nil {
		st, ok := asString(m["structure_type"])
		if !ok {
			return nil, fmt.Errorf("structure_type: expected a string, got %v", m["structure_type"])
		}
		opts = append(opts, block.WithStructureType(st))
	}

	if m["boolean_level"] != nil {
		lvl, ok := asInt(m["boolean_level"])
		if !ok {
			return nil, fmt.Errorf("boolean_level: expected an integer, got %v", m["boolean_level"])
		}
		opts = append(opts, block.WithBooleanLevel(lvl))
	}

	if parent != nil {
		opts = append(opts, block.WithParent(parent))
	}

	b, err := block.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(b, m); err != nil {
		return nil, err
	}
	if err := attachChildren(b, m); err != nil {
		return nil, err
	}
	return b, nil
}

func applyFlags(b *block.Block, m map[string]any) error {
	flags := []struct {
		key string
		dst *bool
	}{
		{"do_register", &b.DoRegister},
		{"do_unregister", &b.DoUnregister},
		{"do_register_children", &b.DoRegisterChildren},
		{"do_unregister_children", &b.DoUnregisterChildren},
		{"do_unregister_boolean", &b.DoUnregisterBoolean},
		{"do_unregister_boolean_children", &b.DoUnregisterBooleanChildren},
		{"use_own_tag", &b.UseOwnTag},
	}
	for _, f := range flags {
		if m[f.key] == nil {
			continue
		}
		v, ok := asBool(m[f.key])
		if !ok {
			return fmt.Errorf("%s: expected a boolean, got %v", f.key, m[f.key])
		}
		*f.dst = v
	}
	return nil
}

func attachChildren(b *block.Block, m map[string]any) error {
	if m["children"] == nil {
		return nil
	}
	children, ok := asList(m["children"])
	if !ok {
		return fmt.Errorf("children: expected a list, got %v", m["children"])
	}
	var childTransforms []any
	if m["children_transforms"] != nil {
		childTransforms, ok = asList(m["children_transforms"])
		if !ok {
			return fmt.Errorf("children_transforms: expected a list, got %v", m["children_transforms"])
		}
		if len(childTransforms) != len(children) {
			return fmt.Errorf("children_transforms: %d lists for %d children", len(childTransforms), len(children))
		}
	}
	for i, e := range children {
		cm, ok := asMap(e)
		if !ok {
			return fmt.Errorf("children[%d]: expected a block definition, got %v", i, e)
		}
		child, err := FromMap(cm, b)
		if err != nil {
			return fmt.Errorf("children[%d]: %w", i, err)
		}
		if childTransforms != nil {
			// Per-child transforms anchor to this block's own parent.
			ts, err := parseTransforms(childTransforms[i], b.Parent)
			if err != nil {
				return fmt.Errorf("children_transforms[%d]: %w", i, err)
			}
			b.AddChild(child, ts...)
		} else {
			b.AddChild(child)
		}
	}
	return nil
}
