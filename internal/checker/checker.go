// Package checker evaluates declarations for uses of prerelease APIs.
package checker

import (
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/peteraritchie/prerelease/internal/decl"
	"github.com/peteraritchie/prerelease/internal/directive/ignore"
	"github.com/peteraritchie/prerelease/internal/marker"
	"github.com/peteraritchie/prerelease/internal/rule"
	"github.com/peteraritchie/prerelease/internal/scope"
	"github.com/peteraritchie/prerelease/internal/typeutil"
	"github.com/peteraritchie/prerelease/internal/usage"
)

// Oracle answers every semantic question the checker asks.
type Oracle interface {
	decl.Oracle
	Selection(sel *ast.SelectorExpr) *types.Selection
}

// Reporter receives diagnostics that survived ignore directives and
// disabled codes.
type Reporter func(rule.Diagnostic)

// Options configures a Checker.
type Options struct {
	Registry   *marker.Registry
	Oracle     Oracle
	Fset       *token.FileSet
	Report     Reporter
	Logger     *slog.Logger
	IgnoreMaps map[string]ignore.Map
	SkipFiles  map[string]bool
	Disabled   map[rule.Code]bool
}

// Checker runs the declaration checks over one package.
type Checker struct {
	registry   *marker.Registry
	oracle     Oracle
	fset       *token.FileSet
	report     Reporter
	logger     *slog.Logger
	ignoreMaps map[string]ignore.Map
	skipFiles  map[string]bool
	disabled   map[rule.Code]bool
}

// New creates a checker.
func New(opts Options) *Checker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	report := opts.Report
	if report == nil {
		report = func(rule.Diagnostic) {}
	}

	return &Checker{
		registry:   opts.Registry,
		oracle:     opts.Oracle,
		fset:       opts.Fset,
		report:     report,
		logger:     logger,
		ignoreMaps: opts.IgnoreMaps,
		skipFiles:  opts.SkipFiles,
		disabled:   opts.Disabled,
	}
}

// Run checks every struct field, package-level variable, function and
// interface method. Locals and parameters are checked through their
// function.
func (c *Checker) Run(insp *inspector.Inspector) {
	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.Field)(nil),
	}

	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		if c.skipFiles[c.fset.Position(n.Pos()).Filename] {
			return true
		}

		// Only struct fields and interface methods are declarations in
		// their own right.
		if _, ok := n.(*ast.Field); ok && !isMemberField(stack) {
			return true
		}

		v, err := decl.New(c.oracle, stack)
		if err != nil {
			c.logger.Warn("skipping declaration", "pos", c.fset.Position(n.Pos()), "error", err)
			return true
		}

		c.check(v)

		return true
	})
}

func (c *Checker) check(v *decl.View) {
	switch v.Kind() {
	case decl.KindField:
		c.checkField(v)
	case decl.KindVar:
		c.checkVariable(v)
		c.checkInitializerLocals(v)
	case decl.KindFunc:
		c.checkFunc(v)
	case decl.KindLocal, decl.KindParam:
		// Checked by checkFunc.
	case decl.KindType, decl.KindPackage:
		// Parents only.
	default:
		c.logger.Warn("unknown declaration kind", "kind", v.Kind())
	}
}

// checkField checks the type of a struct field.
func (c *Checker) checkField(v *decl.View) bool {
	ident, err := v.Identifier()
	if err != nil {
		c.logger.Debug("skipping field", "error", err)
		return false
	}

	return c.evaluate(v, ident, v.DeclaredType(), rule.TypeInstantiation, rule.TypeInPrereleasePackage)
}

// checkVariable checks the declared type of a variable, then what its
// initializer constructs or references.
func (c *Checker) checkVariable(v *decl.View) bool {
	ident, err := v.Identifier()
	if err != nil {
		c.logger.Debug("skipping variable", "kind", v.Kind(), "error", err)
		return false
	}

	if c.evaluate(v, ident, v.DeclaredType(), rule.TypeInstantiation, rule.TypeInPrereleasePackage) {
		return true
	}

	u := usage.Resolve(c.oracle, v.Initializer())
	switch u.Kind {
	case usage.Creation:
		return c.evaluate(v, ident, u.Type, rule.TypeInstantiation, rule.TypeInPrereleasePackage)
	case usage.Member:
		return c.memberUse(v, ident, u)
	}

	return false
}

// checkFunc checks the result types, then the locals, then the
// parameters. Each phase stops at its first finding; phases are
// independent of each other.
func (c *Checker) checkFunc(v *decl.View) {
	ident, err := v.Identifier()
	if err != nil {
		c.logger.Debug("skipping function", "error", err)
		return
	}

	for _, t := range v.Results() {
		if c.evaluate(v, ident, t, rule.ReturnType, rule.ReturnTypeInPrereleasePackage) {
			break
		}
	}

	// Interface methods have results only.
	fd, ok := v.Node().(*ast.FuncDecl)
	if !ok {
		return
	}

	if fd.Body != nil {
		c.checkLocals(v, fd.Body)
	}

	c.checkParams(v, fd)
}

// checkInitializerLocals checks the locals of function literals in a
// package-level initializer, as one phase.
func (c *Checker) checkInitializerLocals(v *decl.View) {
	spec, ok := v.Node().(*ast.ValueSpec)
	if !ok {
		return
	}

	for _, value := range spec.Values {
		if c.checkLocals(v, value) {
			return
		}
	}
}

// checkLocals checks the locals declared under root and reports whether
// one had a finding.
func (c *Checker) checkLocals(fn *decl.View, root ast.Node) bool {
	stack := slices.Clone(fn.Stack())
	done := false

	ast.Inspect(root, func(n ast.Node) bool {
		if done {
			return false
		}
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		stack = append(stack, n)

		switch n := n.(type) {
		case *ast.ValueSpec:
		case *ast.AssignStmt:
			if n.Tok != token.DEFINE {
				return true
			}
		default:
			return true
		}

		v, err := decl.New(c.oracle, stack)
		if err != nil {
			c.logger.Warn("skipping local", "pos", c.fset.Position(n.Pos()), "error", err)
			return true
		}
		if c.checkVariable(v) {
			done = true
		}

		return true
	})

	return done
}

func (c *Checker) checkParams(fn *decl.View, fd *ast.FuncDecl) {
	if fd.Type.Params == nil {
		return
	}

	prefix := append(slices.Clone(fn.Stack()), fd.Type, fd.Type.Params)
	stack := slices.Grow(prefix, 1)

	for _, field := range fd.Type.Params.List {
		stack = append(stack[:len(prefix)], field)

		for _, name := range field.Names {
			v, err := decl.NewParam(c.oracle, stack, name)
			if err != nil {
				c.logger.Warn("skipping parameter", "name", name.Name, "error", err)
				continue
			}
			if c.evaluate(v, name, v.DeclaredType(), rule.TypeInstantiation, rule.TypeInPrereleasePackage) {
				return
			}
		}
	}
}

// evaluate reports the first marker found for typ:
//
//  1. declarations in a prerelease context are exempt
//  2. unknown types are not reported
//  3. a marker on the type itself reports typeCode
//  4. a marker on the declaration reports pkgCode
//  5. a marker on the type's package reports pkgCode
//
// Returns whether a diagnostic was found, even if it was then suppressed.
func (c *Checker) evaluate(v *decl.View, ident *ast.Ident, typ types.Type, typeCode, pkgCode rule.Code) bool {
	if ctx, ok := scope.Classify(v, c.registry); ok {
		c.logger.Debug("in prerelease context",
			"name", ident.Name, "marker", ctx.Annotation.Marker, "on", ctx.Kind, "parent", ctx.Parent)
		return false
	}

	tn := typeutil.TypeNameOf(typ)
	if tn == nil {
		return false
	}
	qualified := typeutil.QualifiedName(tn)

	if ann, ok := c.registry.Find(c.oracle.Annotations(tn)); ok {
		c.emit(typeCode, v, ident, qualified, ann)
		return true
	}

	if ann, ok := c.registry.Find(v.Annotations()); ok {
		c.emit(pkgCode, v, ident, qualified, ann)
		return true
	}

	if ann, ok := c.registry.Find(c.oracle.PackageAnnotations(tn.Pkg())); ok {
		c.emit(pkgCode, v, ident, qualified, ann)
		return true
	}

	return false
}

// memberUse reports a marker on the referenced member itself. The member's
// package is not consulted.
func (c *Checker) memberUse(v *decl.View, ident *ast.Ident, u usage.Usage) bool {
	if scope.InPrerelease(v, c.registry) {
		return false
	}

	ann, ok := c.registry.Find(u.Annotations)
	if !ok {
		return false
	}

	c.emit(rule.MemberUse, v, ident, typeutil.QualifiedName(u.Object), ann)
	return true
}

func (c *Checker) emit(code rule.Code, v *decl.View, ident *ast.Ident, qualified string, ann marker.Annotation) {
	if c.disabled[code] || c.shouldIgnore(ident.Pos(), code) {
		c.logger.Debug("suppressed", "code", code, "name", ident.Name)
		return
	}

	c.report(rule.Diagnostic{
		Category: rule.MustLookup(code),
		Pos:      ident.Pos(),
		Args: rule.Args{
			Identifier:    ident.Name,
			QualifiedName: qualified,
			Marker:        string(ann.Marker),
			KindLabel:     v.Label(),
		},
		Note: ann.Message,
	})
}

// shouldIgnore checks if the position should be ignored for the given code.
func (c *Checker) shouldIgnore(pos token.Pos, code rule.Code) bool {
	position := c.fset.Position(pos)
	ignoreMap, ok := c.ignoreMaps[position.Filename]
	if !ok {
		return false
	}
	return ignoreMap.Suppresses(position.Line, code)
}

// isMemberField reports whether the last node of stack is a struct field
// or an interface method.
func isMemberField(stack []ast.Node) bool {
	if len(stack) < 3 {
		return false
	}
	switch stack[len(stack)-3].(type) {
	case *ast.StructType:
		return true
	case *ast.InterfaceType:
		_, ok := stack[len(stack)-1].(*ast.Field).Type.(*ast.FuncType)
		return ok
	}
	return false
}
