// Package directive parses marker directives from Go comments.
package directive

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/peteraritchie/prerelease/internal/marker"
)

// Namespaces that belong to other tools and are never annotations.
var foreignNamespaces = map[string]bool{
	"go":     true,
	"nolint": true,
	"lint":   true,
}

// ParseComment parses a single "//ns:Name [message]" comment.
// Returns false if the comment is not a directive.
func ParseComment(text string) (marker.Annotation, bool) {
	body, ok := strings.CutPrefix(text, "//")
	if !ok || body == "" || body[0] == ' ' || body[0] == '\t' {
		return marker.Annotation{}, false
	}

	name, rest := body, ""
	if idx := strings.IndexAny(body, " \t"); idx >= 0 {
		name, rest = body[:idx], body[idx+1:]
	}

	id := marker.Identity(name)
	if id.Validate() != nil || foreignNamespaces[id.Namespace()] {
		return marker.Annotation{}, false
	}

	msg := strings.TrimSpace(rest)
	if unquoted, err := strconv.Unquote(msg); err == nil {
		msg = unquoted
	}

	return marker.Annotation{Marker: id, Message: msg}, true
}

// ParseGroup returns the directives of a comment group in source order.
func ParseGroup(groups ...*ast.CommentGroup) []marker.Annotation {
	var anns []marker.Annotation

	for _, cg := range groups {
		if cg == nil {
			continue
		}
		for _, c := range cg.List {
			if a, ok := ParseComment(c.Text); ok {
				anns = append(anns, a)
			}
		}
	}

	return anns
}

// LineIndex maps line numbers to the directives written on them.
// Used for declarations that have no doc comment, like "x := v".
type LineIndex struct {
	standalone map[int][]marker.Annotation // nothing but the comment on the line
	trailing   map[int][]marker.Annotation // after code on the same line
}

// BuildLineIndex scans every comment of file. A directive that follows
// code on its line belongs to that code, so it only counts for its own
// line.
func BuildLineIndex(fset *token.FileSet, file *ast.File) LineIndex {
	idx := LineIndex{
		standalone: make(map[int][]marker.Annotation),
		trailing:   make(map[int][]marker.Annotation),
	}

	// Latest end of any node, per line.
	codeEnd := make(map[int]token.Pos)
	ast.Inspect(file, func(n ast.Node) bool {
		switch n.(type) {
		case nil, *ast.Comment, *ast.CommentGroup:
			return false
		}
		line := fset.Position(n.End()).Line
		if n.End() > codeEnd[line] {
			codeEnd[line] = n.End()
		}
		return true
	})

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			a, ok := ParseComment(c.Text)
			if !ok {
				continue
			}
			line := fset.Position(c.Pos()).Line
			if end, ok := codeEnd[line]; ok && end <= c.Pos() {
				idx.trailing[line] = append(idx.trailing[line], a)
			} else {
				idx.standalone[line] = append(idx.standalone[line], a)
			}
		}
	}

	return idx
}

// At returns the standalone directives on the previous line followed by
// those on line itself.
func (li LineIndex) At(line int) []marker.Annotation {
	var anns []marker.Annotation
	anns = append(anns, li.standalone[line-1]...)
	anns = append(anns, li.standalone[line]...)
	anns = append(anns, li.trailing[line]...)
	return anns
}
