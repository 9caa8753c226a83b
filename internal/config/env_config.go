package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/filter"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/util"
)

var (
	settings = map[string]Setting{}
)

func init() {
	// Parser
	settings["Workers"] = Setting{"PARSER_WORKERS", "0", []func(interface{}, string) error{util.IsInt}}

	// Filters
	settings["AssemblyFilters"] = Setting{"ASSEMBLY_FILTERS", "", nil}
	settings["ClassFilters"] = Setting{"CLASS_FILTERS", "", nil}
	settings["FileFilters"] = Setting{"FILE_FILTERS", "", nil}
	settings["FilterFile"] = Setting{"FILTER_PROPERTIES", "", []func(interface{}, string) error{util.IsEmptyOrFile}}

	// Logging
	settings["Level"] = Setting{"LOG_LEVEL", "info", []func(interface{}, string) error{util.IsNotEmpty}}
}

// Setting is an element in the configuration. It contains the environment
// variable from which the setting is retrieved, its default value as well as a list
// of validations which the value of this setting needs to pass.
type Setting struct {
	key          string
	defaultValue string
	validations  []func(interface{}, string) error
}

// EnvConfig is a Configuration implementation which reads the configuration from the process environment.
// Filter patterns from the optional filter properties file are appended to the ones from the environment.
type EnvConfig struct {
	propertyFilters FilterProperties
}

// NewConfiguration creates a configuration instance.
func NewConfiguration() (Configuration, error) {
	// Check if we have all we need.
	multiError := verifyEnv()
	if !multiError.Empty() {
		for _, err := range multiError.Errors {
			logging.AppLogger().Error(err)
		}
		return nil, errors.New("one or more required environment variables for this configuration are missing or invalid")
	}

	config := EnvConfig{}
	if path := getConfigValueFromEnv("FilterFile"); path != "" {
		props, err := LoadFilterProperties(path)
		if err != nil {
			return nil, err
		}
		config.propertyFilters = props
	}
	return &config, nil
}

// Workers returns the number of classes parsed concurrently.
func (c *EnvConfig) Workers() int {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	// validated in verifyEnv
	workers, _ := strconv.Atoi(value)
	return workers
}

// AssemblyFilters returns the filter patterns applied to assembly names.
func (c *EnvConfig) AssemblyFilters() []string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return append(filter.ParsePatterns(value), c.propertyFilters.Assembly...)
}

// ClassFilters returns the filter patterns applied to class names.
func (c *EnvConfig) ClassFilters() []string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return append(filter.ParsePatterns(value), c.propertyFilters.Class...)
}

// FileFilters returns the filter patterns applied to file paths.
func (c *EnvConfig) FileFilters() []string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return append(filter.ParsePatterns(value), c.propertyFilters.File...)
}

// FilterFile returns the path of the filter properties file.
func (c *EnvConfig) FilterFile() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// Level returns the logging level.
func (c *EnvConfig) Level() string {
	callPtr, _, _, _ := runtime.Caller(0)
	value := getConfigValueFromEnv(util.NameOfFunction(callPtr))

	return value
}

// String returns a string representation of the configuration.
func (c *EnvConfig) String() string {
	config := map[string]interface{}{}
	for key, setting := range settings {
		value := getConfigValueFromEnv(key)
		// don't echo passwords
		if strings.Contains(setting.key, "PASSWORD") && len(value) > 0 {
			value = "***"
		}
		config[key] = value

	}
	return fmt.Sprintf("%v", config)
}

// Verify checks whether all needed config options are set.
func verifyEnv() util.MultiError {
	var errors util.MultiError
	for key, setting := range settings {
		value := getConfigValueFromEnv(key)

		for _, validateFunc := range setting.validations {
			errors.Collect(validateFunc(value, setting.key))
		}
	}

	return errors
}

func getConfigValueFromEnv(funcName string) string {
	setting := settings[funcName]

	value, ok := os.LookupEnv(setting.key)
	if !ok {
		value = setting.defaultValue
	}
	return value
}
