package parser

import (
	"sort"
	"strings"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// processAssembly builds the assembly with the given name. Classes are processed concurrently,
// the first error aborts the processing.
func (p *CoberturaParser) processAssembly(packages []report.Package, name string) (*coverage.Assembly, error) {
	logger.Debugf("processing assembly '%s'", name)

	packages = packagesNamed(packages, name)
	names, err := classNames(packages)
	if err != nil {
		return nil, err
	}
	names = lo.Filter(names, func(name string, _ int) bool {
		return p.classFilter.IsIncluded(name)
	})
	sort.Strings(names)

	assembly := coverage.NewAssembly(name)
	classes := make([]*coverage.Class, len(names))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, className := range names {
		g.Go(func() error {
			class, err := p.processClass(packages, assembly, className)
			if err != nil {
				return errors.Wrapf(err, "unable to process class '%s'", className)
			}
			classes[i] = class
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, class := range classes {
		if class != nil {
			assembly.AddClass(class)
		}
	}
	assembly.SortClasses()
	return assembly, nil
}

func packagesNamed(packages []report.Package, name string) []report.Package {
	return lo.Filter(packages, func(pkg report.Package, _ int) bool {
		return pkg.Name != nil && *pkg.Name == name
	})
}

// classNames returns the distinct names of the logical classes of the given packages. Nested classes
// map to their outermost class, compiler generated classes are skipped.
func classNames(packages []report.Package) ([]string, error) {
	names := []string{}
	for _, pkg := range packages {
		for _, class := range pkg.Classes {
			name, err := requireAttribute("class", "name", class.Name)
			if err != nil {
				return nil, err
			}
			if i := strings.Index(name, "/"); i >= 0 {
				name = name[:i]
			}
			if isCompilerGeneratedClass(name) {
				continue
			}
			names = append(names, name)
		}
	}
	return lo.Uniq(names), nil
}
