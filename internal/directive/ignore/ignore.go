package ignore

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/peteraritchie/prerelease/internal/rule"
)

// Directive is the name of the ignore comment.
const Directive = "prerelease:ignore"

// Entry is one ignore comment.
type Entry struct {
	Pos   token.Pos
	Codes []rule.Code // empty suppresses every code

	hits map[rule.Code]bool
}

func (e *Entry) covers(code rule.Code) bool {
	return len(e.Codes) == 0 || slices.Contains(e.Codes, code)
}

// Map holds the ignore comments of one file, keyed by line.
type Map map[int]*Entry

// EnabledCodes is the set of codes that can be reported in this run.
type EnabledCodes map[rule.Code]bool

// Build collects the ignore comments of file.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			codes, ok := Parse(c.Text)
			if !ok {
				continue
			}
			m[fset.Position(c.Pos()).Line] = &Entry{
				Pos:   c.Pos(),
				Codes: codes,
				hits:  make(map[rule.Code]bool),
			}
		}
	}

	return m
}

// Parse parses "//prerelease:ignore [CODE[,CODE...]] [- reason]".
// A nil slice means every code. Codes are upper-cased but not validated.
func Parse(text string) ([]rule.Code, bool) {
	body, ok := strings.CutPrefix(text, "//")
	if !ok {
		return nil, false
	}

	rest, ok := strings.CutPrefix(strings.TrimSpace(body), Directive)
	if !ok {
		return nil, false
	}
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && !unicode.IsSpace(r) {
		return nil, false
	}

	// The code list ends at a reason or a trailing comment.
	var list strings.Builder
	for _, field := range strings.Fields(rest) {
		if field == "-" || strings.HasPrefix(field, "//") {
			break
		}
		list.WriteString(field)
	}

	var codes []rule.Code
	for part := range strings.SplitSeq(list.String(), ",") {
		if part != "" {
			codes = append(codes, rule.Code(strings.ToUpper(part)))
		}
	}

	return codes, true
}

// Suppresses reports whether an ignore comment on line, or on the line
// above it, covers code. A covering comment is marked as used.
func (m Map) Suppresses(line int, code rule.Code) bool {
	for _, l := range [...]int{line, line - 1} {
		if e := m[l]; e != nil && e.covers(code) {
			e.hits[code] = true
			return true
		}
	}

	return false
}

// UnusedIgnore is an ignore comment that suppressed nothing.
type UnusedIgnore struct {
	Pos   token.Pos
	Codes []rule.Code // the listed codes that were never hit; empty for a bare directive
}

// Unused returns the ignore comments that suppressed nothing, in source
// order. A code that is not enabled can never be hit.
func (m Map) Unused(enabled EnabledCodes) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, e := range m {
		if len(e.Codes) == 0 {
			if !e.hitAny(enabled) {
				unused = append(unused, UnusedIgnore{Pos: e.Pos})
			}
			continue
		}

		missed := slices.DeleteFunc(slices.Clone(e.Codes), func(c rule.Code) bool {
			return enabled[c] && e.hits[c]
		})
		if len(missed) > 0 {
			unused = append(unused, UnusedIgnore{Pos: e.Pos, Codes: missed})
		}
	}

	slices.SortFunc(unused, func(a, b UnusedIgnore) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return unused
}

func (e *Entry) hitAny(enabled EnabledCodes) bool {
	for code := range e.hits {
		if enabled[code] {
			return true
		}
	}
	return false
}
