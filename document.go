package sym

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Konfuzian/symbolic-language/symlog"
)

// parser holds all state for one parse call: the immutable input
// (inside cur), the variable scope (write-dominated: only `$name!`
// overrides an existing binding), the import paths collected in
// textual order, and whether strict key-duplication checking is on.
//
// A parser is never shared across goroutines, but distinct parser
// values are fully independent, so concurrent top-level calls to
// [Parse] are safe (see cmd/symctl's batch mode).
type parser struct {
	cur        *cursor
	vars       map[string]Value
	imports    []string
	strictKeys bool
	logger     *slog.Logger
}

// Result is the outcome of [ParseDetailed]: the resolved document value
// plus the `@import` paths collected in textual order. Resolving those
// paths against a filesystem is explicitly out of scope for this
// package (spec.md §9's first Open Question) — the list is exposed
// as-is for a caller to act on.
type Result struct {
	Value   Value
	Imports []string
}

// Option configures a parse call.
type Option func(*parser)

// WithStrictKeys enables DuplicateKeyError: a non-override `:key` field
// colliding with an existing key, where either side is not an object
// (so no meaningful deep-merge is possible), becomes an error instead
// of silently overwriting. This resolves spec.md §9's second Open
// Question: strict mode is symmetric with variable redefinition, but
// never fires on the compositional case of two objects meant to be
// deep-merged.
func WithStrictKeys() Option {
	return func(p *parser) { p.strictKeys = true }
}

// WithLogger sets the [slog.Logger] the document engine uses to report
// variable registration, reference resolution, and block classification
// at debug/info level. Without this option the engine's log output is
// discarded.
func WithLogger(l *slog.Logger) Option {
	return func(p *parser) { p.logger = l }
}

// Parse parses a SYM document and returns its resolved value.
func Parse(text string) (Value, error) {
	res, err := ParseDetailed(text, nil)
	if err != nil {
		return Value{}, err
	}

	return res.Value, nil
}

// ParseWithVars parses a SYM document seeded with an initial variable
// scope. Definitions in the document may still add to or (with `!`)
// override entries already present in scope.
func ParseWithVars(text string, vars map[string]Value) (Value, error) {
	res, err := ParseDetailed(text, vars)
	if err != nil {
		return Value{}, err
	}

	return res.Value, nil
}

// ParseFile reads path and parses its contents.
func ParseFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return Parse(string(data))
}

// ParseDetailed is the full entry point: it accepts an initial variable
// scope (nil for an empty one) and options, and returns both the
// resolved value and the collected import list.
func ParseDetailed(text string, vars map[string]Value, opts ...Option) (Result, error) {
	if vars == nil {
		vars = make(map[string]Value)
	} else {
		seeded := make(map[string]Value, len(vars))
		for k, v := range vars {
			seeded[k] = v
		}

		vars = seeded
	}

	p := &parser{
		cur:    newCursor(text),
		vars:   vars,
		logger: slog.New(symlog.CreateHandler(io.Discard, slog.LevelError, symlog.FormatLogfmt)),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p.parseDocument()
}

// parseDocument runs the full pipeline described in spec.md §4.6.
func (p *parser) parseDocument() (Result, error) {
	p.skipTrivia()

	for p.cur.hasPrefix("@import") {
		path := p.parseImport()
		p.imports = append(p.imports, path)
		p.logger.Debug("collected import directive", "path", path)
		p.skipTrivia()
	}

	type block struct {
		isDefs bool
		value  Value
	}

	var blocks []block

	for {
		p.skipTrivia()

		if p.cur.atEnd() {
			break
		}

		v, err := p.parseValue()
		if err != nil {
			return Result{}, err
		}

		blocks = append(blocks, block{isDefs: isDefsBlock(v), value: v})
	}

	if len(blocks) == 0 {
		return Result{}, p.errorf("Empty document")
	}

	data := blocks[len(blocks)-1].value
	defsBlocks := blocks[:len(blocks)-1]

	numDefs := 0

	for _, b := range defsBlocks {
		if !b.isDefs {
			continue
		}

		numDefs++

		obj, _ := b.value.AsObject()

		if err := p.registerDefs(obj); err != nil {
			return Result{}, err
		}
	}

	p.logger.Info("classified blocks", "total", len(blocks), "definitions", numDefs)

	result, err := p.substituteVariables(data)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: result, Imports: p.imports}, nil
}

// isDefsBlock reports whether v is a non-empty object whose every key
// starts with `$` — the whole-block classification rule of spec.md §4.6
// step 4 and §9. Classification happens before any registration side
// effect, so a block is never partially registered.
func isDefsBlock(v Value) bool {
	obj, ok := v.AsObject()
	if !ok || len(obj) == 0 {
		return false
	}

	for k := range obj {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}

	return true
}

// registerDefs strips the `$` prefix (and optional trailing `!`
// override marker) from each entry of a definitions block and adds it
// to the variable scope.
func (p *parser) registerDefs(obj map[string]Value) error {
	for key, value := range obj {
		name := strings.TrimPrefix(key, "$")

		override := false
		if strings.HasSuffix(name, "!") {
			name = strings.TrimSuffix(name, "!")
			override = true
		}

		if _, exists := p.vars[name]; exists && !override {
			return &DuplicateVariableError{Name: name}
		}

		p.vars[name] = value
		p.logger.Debug("registered variable", "name", name, "override", override)
	}

	return nil
}

// substituteVariables walks v and replaces every placeholder string of
// the literal form "$name" with a deep copy of the bound value. Arrays
// and objects are traversed recursively; every other kind is returned
// unchanged.
func (p *parser) substituteVariables(v Value) (Value, error) {
	switch v.Kind() {
	case KindString:
		s, _ := v.AsString()
		if !strings.HasPrefix(s, "$") {
			return v, nil
		}

		name := s[1:]

		bound, ok := p.vars[name]
		if !ok {
			return Value{}, &UndefinedVariableError{Name: name}
		}

		p.logger.Debug("resolved variable reference", "name", name)

		return DeepCopy(bound), nil

	case KindArray:
		arr, _ := v.AsArray()
		out := make([]Value, len(arr))

		for i, e := range arr {
			r, err := p.substituteVariables(e)
			if err != nil {
				return Value{}, err
			}

			out[i] = r
		}

		return ArrayValue(out), nil

	case KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]Value, len(obj))

		for k, e := range obj {
			r, err := p.substituteVariables(e)
			if err != nil {
				return Value{}, err
			}

			out[k] = r
		}

		return ObjectValue(out), nil

	default:
		return v, nil
	}
}

// parseImport consumes an `@import` directive and returns its trimmed
// path, the remainder of the current line.
func (p *parser) parseImport() string {
	p.cur.advanceBytes(len("@import"))
	p.skipHorizontalWhitespace()

	start := p.cur.pos

	for {
		r, ok := p.cur.peek()
		if !ok || r == '\n' || r == '\r' {
			break
		}

		p.cur.advance()
	}

	return strings.TrimSpace(p.cur.input[start:p.cur.pos])
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.cur.line, Col: p.cur.col, Message: fmt.Sprintf(format, args...)}
}
