package config

import (
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/filter"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

const (
	assemblyFiltersKey = "filters.assembly"
	classFiltersKey    = "filters.class"
	fileFiltersKey     = "filters.file"
)

// FilterProperties holds the filter patterns read from a properties file.
type FilterProperties struct {
	Assembly []string
	Class    []string
	File     []string
}

// LoadFilterProperties reads the keys 'filters.assembly', 'filters.class' and 'filters.file' of the given
// properties file. Each value is a ';' separated list of patterns.
func LoadFilterProperties(path string) (FilterProperties, error) {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return FilterProperties{}, errors.Wrapf(err, "unable to load filter properties from %s", path)
	}

	return FilterProperties{
		Assembly: filter.ParsePatterns(props.GetString(assemblyFiltersKey, "")),
		Class:    filter.ParsePatterns(props.GetString(classFiltersKey, "")),
		File:     filter.ParsePatterns(props.GetString(fileFiltersKey, "")),
	}, nil
}
