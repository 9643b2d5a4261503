// Command prerelease is a linter that reports uses of prerelease APIs.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/peteraritchie/prerelease"
)

func main() {
	singlechecker.Main(prerelease.Analyzer)
}
