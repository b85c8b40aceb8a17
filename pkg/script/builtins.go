package script

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/somesortofme/gmsh-scripts/pkg/block"
	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/transform"
)

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms source before passing it to zygomys:
//
//  1. :keyword -> "__kw_keyword" string literal, so keywords need no
//     global symbol registration.
//  2. kebab-case -> underscore (boolean-level -> boolean_level), since
//     zygomys reads hyphens as subtraction.
//  3. ; line comments -> // comments.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		if b[i] == '"' || b[i] == '`' {
			quote := b[i]
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != quote {
				if quote == '"' && b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, kwPrefix...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// sexpBlock wraps a *block.Block so it can be passed between builtins.
type sexpBlock struct {
	b *block.Block
}

func (s *sexpBlock) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(block :size %d)", s.b.Size())
}
func (s *sexpBlock) Type() *zygo.RegisteredType { return nil }

// sexpTransform wraps a transform.Transform.
type sexpTransform struct {
	t    transform.Transform
	name string
}

func (s *sexpTransform) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s)", s.name)
}
func (s *sexpTransform) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a geometry.Vec3.
type sexpVec3 struct {
	vec geometry.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// kwArgs holds the result of parsing a mixed positional+keyword
// argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		if str, ok := args[i].(*zygo.SexpStr); ok && strings.HasPrefix(str.S, kwPrefix) {
			name := str.S[len(kwPrefix):]
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
			continue
		}
		result.positional = append(result.positional, args[i])
		i++
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toBool(s zygo.Sexp) (bool, error) {
	if v, ok := s.(*zygo.SexpBool); ok {
		return v.Val, nil
	}
	return false, fmt.Errorf("expected boolean, got %T (%s)", s, s.SexpString(nil))
}

func toBlock(s zygo.Sexp) (*block.Block, error) {
	if sb, ok := s.(*sexpBlock); ok {
		return sb.b, nil
	}
	return nil, fmt.Errorf("expected block, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go
// slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// registerBuiltins installs the block DSL into a zygomys environment.
// Source code must be preprocessed with preprocessSource before
// evaluation so that :keyword tokens become recognizable literals.
func registerBuiltins(env *zygo.Zlisp, c *collector) {

	// (vec3 1 2 3)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var xs [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
			}
			xs[i] = f
		}
		return &sexpVec3{vec: geometry.Vec3{X: xs[0], Y: xs[1], Z: xs[2]}}, nil
	})

	// (translate dx dy dz)
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("translate requires exactly 3 arguments, got %d", len(args))
		}
		var xs [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("translate: %w", err)
			}
			xs[i] = f
		}
		t := transform.Translate{Delta: geometry.Vec3{X: xs[0], Y: xs[1], Z: xs[2]}}
		return &sexpTransform{t: t, name: "translate"}, nil
	})

	// (rotate :origin (vec3 0 0 0) :direction (vec3 0 0 1) :angle 90)
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		origin := geometry.Vec3{}
		direction := geometry.Vec3{Z: 1}
		angle := 0.0
		if v, ok := pa.kw["origin"]; ok {
			sv, ok := v.(*sexpVec3)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("rotate: origin: expected vec3, got %T", v)
			}
			origin = sv.vec
		}
		if v, ok := pa.kw["direction"]; ok {
			sv, ok := v.(*sexpVec3)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("rotate: direction: expected vec3, got %T", v)
			}
			direction = sv.vec
		}
		if v, ok := pa.kw["angle"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: angle: %w", err)
			}
			angle = f
		}
		return &sexpTransform{t: transform.NewRotate(origin, direction, angle), name: "rotate"}, nil
	})

	// (block :points 2.0 :zone "core" :structure (list 5 "progression" 1.1)
	//        :quadrate true :structure-type "LLL" :boolean-level 1
	//        :transforms (list (translate 1 0 0))
	//        :children (list (block ...)))
	env.AddFunction("block", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var opts []block.Option
		var children []*block.Block

		if v, ok := pa.kw["points"]; ok {
			opt, err := pointsOption(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: points: %w", err)
			}
			opts = append(opts, opt)
		}
		if v, ok := pa.kw["zone"]; ok {
			z, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: zone: %w", err)
			}
			opts = append(opts, block.WithZone(z))
		}
		if v, ok := pa.kw["mesh-size"]; ok {
			ms, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: mesh-size: %w", err)
			}
			opts = append(opts, block.WithMeshSize(ms))
		}
		if v, ok := pa.kw["structure"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil || len(items) != 3 {
				return zygo.SexpNull, fmt.Errorf("block: structure: expected (list nPoints meshType coef)")
			}
			n, errN := toInt(items[0])
			mt, errS := toString(items[1])
			coef, errC := toFloat64(items[2])
			if errN != nil || errS != nil || errC != nil {
				return zygo.SexpNull, fmt.Errorf("block: structure: expected (list nPoints meshType coef)")
			}
			opts = append(opts, block.WithStructureAll(n, mt, coef))
		}
		if v, ok := pa.kw["quadrate"]; ok {
			q, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: quadrate: %w", err)
			}
			if q {
				opts = append(opts, block.WithQuadrate())
			}
		}
		if v, ok := pa.kw["structure-type"]; ok {
			st, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: structure-type: %w", err)
			}
			opts = append(opts, block.WithStructureType(st))
		}
		if v, ok := pa.kw["boolean-level"]; ok {
			lvl, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: boolean-level: %w", err)
			}
			opts = append(opts, block.WithBooleanLevel(lvl))
		}
		if v, ok := pa.kw["transforms"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: transforms: %w", err)
			}
			var ts []transform.Transform
			for _, item := range items {
				st, ok := item.(*sexpTransform)
				if !ok {
					return zygo.SexpNull, fmt.Errorf("block: transforms: expected transform, got %T", item)
				}
				ts = append(ts, st.t)
			}
			opts = append(opts, block.WithTransforms(ts...))
		}
		if v, ok := pa.kw["children"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("block: children: %w", err)
			}
			for _, item := range items {
				child, err := toBlock(item)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("block: children: %w", err)
				}
				children = append(children, child)
			}
		}

		b, err := block.New(opts...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("block: %w", err)
		}
		for _, child := range children {
			b.AddChild(child)
		}
		return &sexpBlock{b: b}, nil
	})

	// (child parent kid (translate 1 0 0) ...)
	env.AddFunction("child", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("child requires a parent and a child block")
		}
		parent, err := toBlock(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("child: parent: %w", err)
		}
		kid, err := toBlock(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("child: %w", err)
		}
		var ts []transform.Transform
		for _, a := range args[2:] {
			st, ok := a.(*sexpTransform)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("child: expected transform, got %T (%s)", a, a.SexpString(nil))
			}
			ts = append(ts, st.t)
		}
		parent.AddChild(kid, ts...)
		return args[0], nil
	})

	// (design root-block)
	env.AddFunction("design", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("design requires exactly one block argument")
		}
		root, err := toBlock(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("design: %w", err)
		}
		c.root = root
		return args[0], nil
	})
}

// pointsOption maps the :points keyword to a block option: a number is
// a cube side, a 3-number list box extents, an 8-vec3 list explicit
// corners.
func pointsOption(v zygo.Sexp) (block.Option, error) {
	if f, err := toFloat64(v); err == nil {
		return block.WithCubeSize(f), nil
	}
	items, err := sexpListToSlice(v)
	if err != nil {
		return nil, err
	}
	if len(items) == 3 {
		if _, isVec := items[0].(*sexpVec3); !isVec {
			var xs [3]float64
			for i, item := range items {
				f, err := toFloat64(item)
				if err != nil {
					return nil, err
				}
				xs[i] = f
			}
			return block.WithBoxSize(xs[0], xs[1], xs[2]), nil
		}
	}
	if len(items) == 8 {
		var corners [8]geometry.Vec3
		for i, item := range items {
			sv, ok := item.(*sexpVec3)
			if !ok {
				return nil, fmt.Errorf("corner %d: expected vec3, got %T", i, item)
			}
			corners[i] = sv.vec
		}
		return block.WithPoints(block.PointsFromCoordinates(corners)), nil
	}
	return nil, fmt.Errorf("expected side, 3 extents or 8 corners, got %s", v.SexpString(nil))
}
