package parser

import (
	"strings"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// processClass builds the class with the given name from all its fragments. It returns nil if every
// file of the class has been filtered out.
func (p *CoberturaParser) processClass(packages []report.Package, assembly *coverage.Assembly, name string) (*coverage.Class, error) {
	logger.Debugf("processing class '%s'", name)

	fragments := classFragments(packages, func(fragmentName string) bool {
		return isFragmentOf(fragmentName, name)
	})

	files := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		file, err := requireAttribute("class", "filename", fragment.Filename)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	files = lo.Uniq(files)

	filteredFiles := lo.Filter(files, func(file string, _ int) bool {
		return p.fileFilter.IsIncluded(file)
	})
	keep := (len(files) == 0 && !p.fileFilter.HasCustomFilters()) || len(filteredFiles) > 0
	if !keep {
		logger.Debugf("skipping class '%s', all files have been filtered", name)
		return nil, nil
	}

	class := coverage.NewClass(name, assembly)
	for _, file := range filteredFiles {
		codeFile, err := processFile(packages, class, file)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to process file '%s'", file)
		}
		class.AddFile(codeFile)
	}
	return class, nil
}

// isFragmentOf returns true if fragmentName is className itself or one of its nested ('/') or
// inner ('$') classes.
func isFragmentOf(fragmentName, className string) bool {
	return fragmentName == className ||
		strings.HasPrefix(fragmentName, className+"$") ||
		strings.HasPrefix(fragmentName, className+"/")
}

func classFragments(packages []report.Package, match func(name string) bool) []report.Class {
	fragments := []report.Class{}
	for _, pkg := range packages {
		for _, class := range pkg.Classes {
			if class.Name != nil && match(*class.Name) {
				fragments = append(fragments, class)
			}
		}
	}
	return fragments
}
