// Package golang applies the camelcase naming rule to Go sources as a
// go/analysis pass, so the same conventions can be enforced from go vet
// style drivers.
package golang

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/pabigot/camelint/checker"
)

var Analyzer = &analysis.Analyzer{
	Name: checker.RuleName,
	Doc:  "reports declared identifiers that are not in camel case",
	Run:  run,
}

var (
	prefixes   string
	suffixes   string
	exceptions string
)

func init() {
	Analyzer.Flags.StringVar(&prefixes, "prefixes", "", "comma-separated allowed name prefixes")
	Analyzer.Flags.StringVar(&suffixes, "suffixes", "", "comma-separated allowed name suffixes")
	Analyzer.Flags.StringVar(&exceptions, "exceptions", "", "comma-separated exempt names")
}

func run(pass *analysis.Pass) (interface{}, error) {
	config, err := checker.Resolve(checker.Options{
		AllowedPrefixes: checker.Literals(splitList(prefixes)...),
		AllowedSuffixes: checker.Literals(splitList(suffixes)...),
		Exceptions:      checker.Literals(splitList(exceptions)...),
	})
	if err != nil {
		return nil, err
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.FuncDecl:
				checkIdent(pass, config, n.Name)
			case *ast.TypeSpec:
				checkIdent(pass, config, n.Name)
			case *ast.ValueSpec:
				for _, name := range n.Names {
					checkIdent(pass, config, name)
				}
			case *ast.Field:
				for _, name := range n.Names {
					checkIdent(pass, config, name)
				}
			case *ast.LabeledStmt:
				checkIdent(pass, config, n.Label)
			case *ast.AssignStmt:
				// Only short variable declarations introduce names
				if n.Tok != token.DEFINE {
					return true
				}
				for _, expr := range n.Lhs {
					if ident, ok := expr.(*ast.Ident); ok {
						checkIdent(pass, config, ident)
					}
				}
			}
			return true
		})
	}
	return nil, nil
}

func checkIdent(pass *analysis.Pass, config *checker.Config, ident *ast.Ident) {
	if ident == nil || ident.Name == "_" {
		return
	}
	name := config.CheckableName(ident.Name)
	if config.IsException(name) {
		return
	}
	if !checker.IsStyleViolating(name) {
		return
	}
	pass.Reportf(ident.Pos(), "identifier '%s' is not in camel case", ident.Name)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
