// Package rule defines the prerelease diagnostic categories.
package rule

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Code identifies a diagnostic category.
type Code string

// Diagnostic codes.
const (
	TypeInstantiation             Code = "EA0100"
	MemberUse                     Code = "EA0101"
	TypeInPrereleasePackage       Code = "EA0102"
	ReturnType                    Code = "EA0103"
	ReturnTypeInPrereleasePackage Code = "EA0104"
)

// Severity of a diagnostic. Every category is a warning.
type Severity string

// Warning is the only severity reported.
const Warning Severity = "warning"

// ErrUnknownCode is returned by ParseCodes for codes that have no category.
var ErrUnknownCode = errors.New("unknown diagnostic code")

// Category describes one kind of diagnostic.
type Category struct {
	Code     Code
	Name     string   // e.g. "type-instantiation-prerelease"
	Severity Severity // always Warning
	Format   string   // message template
}

var categories = []Category{
	{
		Code:     TypeInstantiation,
		Name:     "type-instantiation-prerelease",
		Severity: Warning,
		Format:   "{kind} name '{identifier}' instantiates prerelease type '{qualifiedName}'",
	},
	{
		Code:     MemberUse,
		Name:     "member-use-prerelease",
		Severity: Warning,
		Format:   "{kind} name '{identifier}' uses prerelease member '{qualifiedName}'",
	},
	{
		Code:     TypeInPrereleasePackage,
		Name:     "type-in-prerelease-package",
		Severity: Warning,
		Format:   "{kind} name '{identifier}' instantiates type '{qualifiedName}' in prerelease package",
	},
	{
		Code:     ReturnType,
		Name:     "return-type-prerelease",
		Severity: Warning,
		Format:   "Method name '{identifier}' returns prerelease type '{qualifiedName}'",
	},
	{
		Code:     ReturnTypeInPrereleasePackage,
		Name:     "return-type-in-prerelease-package",
		Severity: Warning,
		Format:   "Method name '{identifier}' returns type '{qualifiedName}' in prerelease package",
	},
}

// All returns every category in code order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Lookup returns the category for code.
func Lookup(code Code) (Category, bool) {
	for _, c := range categories {
		if c.Code == code {
			return c, true
		}
	}
	return Category{}, false
}

// MustLookup is Lookup for codes declared in this package.
func MustLookup(code Code) Category {
	c, ok := Lookup(code)
	if !ok {
		panic(fmt.Sprintf("rule: no category for %s", code))
	}
	return c
}

// ParseCodes parses a comma-separated list of codes.
func ParseCodes(s string) ([]Code, error) {
	var codes []Code

	for part := range strings.SplitSeq(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if _, ok := Lookup(Code(part)); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCode, part)
		}
		codes = append(codes, Code(part))
	}

	return codes, nil
}

// Args are the message arguments of a diagnostic.
type Args struct {
	Identifier    string
	QualifiedName string
	Marker        string
	KindLabel     string
}

// Diagnostic is a single finding produced by the checker.
type Diagnostic struct {
	Category
	Pos  token.Pos // position of the identifier
	Args Args
	Note string // message payload of the marker, if any
}

// Text renders the category template with the diagnostic arguments.
func (d Diagnostic) Text() string {
	return Render(d.Format, d.Args)
}

// Render substitutes args into a template.
func Render(format string, args Args) string {
	r := strings.NewReplacer(
		"{kind}", args.KindLabel,
		"{identifier}", args.Identifier,
		"{qualifiedName}", args.QualifiedName,
		"{marker}", args.Marker,
	)
	return r.Replace(format)
}
