package prerelease

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/peteraritchie/prerelease/internal/annotation"
	"github.com/peteraritchie/prerelease/internal/checker"
	"github.com/peteraritchie/prerelease/internal/config"
	"github.com/peteraritchie/prerelease/internal/directive/ignore"
	"github.com/peteraritchie/prerelease/internal/rule"
)

// Flags for the analyzer.
var (
	configFile       string
	markers          string
	externalObjects  string
	externalPackages string
	disable          string
	debug            bool
)

func init() {
	Analyzer.Flags.StringVar(&configFile, "config", "",
		"path to a YAML configuration file")
	Analyzer.Flags.StringVar(&markers, "markers", "",
		"comma-separated list of marker directives (default prerelease:Prerelease,prerelease:Alpha,prerelease:Experimental,prerelease:Preview)")
	Analyzer.Flags.StringVar(&externalObjects, "external", "",
		"comma-separated list of APIs to treat as prerelease (e.g., pkg.Func or pkg.Type.Method)")
	Analyzer.Flags.StringVar(&externalPackages, "external-packages", "",
		"comma-separated list of package paths to treat as prerelease")
	Analyzer.Flags.StringVar(&disable, "disable", "",
		"comma-separated list of diagnostic codes to disable (e.g., EA0101)")
	Analyzer.Flags.BoolVar(&debug, "debug", false, "log checker decisions to stderr")
}

// Analyzer is the main analyzer for prerelease.
var Analyzer = &analysis.Analyzer{
	Name:      "prerelease",
	Doc:       "reports declarations that use prerelease types, members or packages outside prerelease code",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{new(annotation.ObjectFact), new(annotation.PackageFact)},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	cfg, err := config.Load(config.Flags{
		Config:           configFile,
		Markers:          markers,
		Disable:          disable,
		External:         externalObjects,
		ExternalPackages: externalPackages,
		Debug:            debug,
	})
	if err != nil {
		return nil, fmt.Errorf("prerelease: %w", err)
	}

	// Both were checked by config.Load.
	reg, _ := cfg.Registry()
	disabled, _ := cfg.DisabledCodes()

	logger := cfg.Logger(os.Stderr).With("package", pass.Pkg.Path())

	// Annotations of every file are shared with importers, generated or not.
	index := annotation.Build(pass.Fset, pass.Files, pass.TypesInfo)
	annotation.Export(pass, index, reg)
	logger.Debug("indexed annotations", "objects", index.Len(), "package", len(index.Package()))

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	c := checker.New(checker.Options{
		Registry:   reg,
		Oracle:     annotation.NewLookup(pass.Pkg, pass.TypesInfo, index, annotation.PassFacts{Pass: pass}, cfg.ExternalMarkers()),
		Fset:       pass.Fset,
		Logger:     logger,
		IgnoreMaps: ignoreMaps,
		SkipFiles:  skipFiles,
		Disabled:   disabled,
		Report: func(d rule.Diagnostic) {
			pass.Report(newDiagnostic(d))
		},
	})
	c.Run(insp)

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps, buildEnabledCodes(disabled))

	return nil, nil
}

// newDiagnostic converts a checker finding. The marker and its message are
// attached as related information at the same position.
func newDiagnostic(d rule.Diagnostic) analysis.Diagnostic {
	related := "marked " + d.Args.Marker
	if d.Note != "" {
		related += ": " + d.Note
	}

	return analysis.Diagnostic{
		Pos:      d.Pos,
		Category: string(d.Code),
		Message:  d.Text(),
		Related:  []analysis.RelatedInformation{{Pos: d.Pos, Message: related}},
	}
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		// Always skip generated files
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// buildEnabledCodes creates a map of which codes can be reported.
func buildEnabledCodes(disabled map[rule.Code]bool) ignore.EnabledCodes {
	enabled := make(ignore.EnabledCodes)

	for _, c := range rule.All() {
		if !disabled[c.Code] {
			enabled[c.Code] = true
		}
	}

	return enabled
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.EnabledCodes) {
	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.Unused(enabled) {
			if len(unused.Codes) == 0 {
				pass.Reportf(unused.Pos, "unused prerelease:ignore directive")
			} else {
				codes := make([]string, len(unused.Codes))
				for i, c := range unused.Codes {
					codes[i] = string(c)
				}
				pass.Reportf(unused.Pos, "unused prerelease:ignore directive for code(s): %s", strings.Join(codes, ", "))
			}
		}
	}
}
