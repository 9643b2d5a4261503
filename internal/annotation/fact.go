package annotation

import (
	"strings"

	"github.com/peteraritchie/prerelease/internal/marker"
)

// ObjectFact records the marker annotations of an exported object so that
// importing packages can see them.
type ObjectFact struct {
	Annotations []marker.Annotation
}

// AFact implements analysis.Fact.
func (*ObjectFact) AFact() {}

func (f *ObjectFact) String() string {
	return "annotated(" + join(f.Annotations) + ")"
}

// PackageFact records the package-level marker annotations.
type PackageFact struct {
	Annotations []marker.Annotation
}

// AFact implements analysis.Fact.
func (*PackageFact) AFact() {}

func (f *PackageFact) String() string {
	return "package(" + join(f.Annotations) + ")"
}

func join(anns []marker.Annotation) string {
	names := make([]string, len(anns))
	for i, a := range anns {
		names[i] = string(a.Marker)
	}
	return strings.Join(names, ",")
}
