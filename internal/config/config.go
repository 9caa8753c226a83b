package config

// Configuration declares the configuration properties of this app.
type Configuration interface {
	ParserConfig
	FilterConfig
	LogConfig

	// String returns a string representation of the configuration.
	String() string
}

// ParserConfig defines the parser specific configuration.
type ParserConfig interface {
	// Workers returns the number of classes parsed concurrently, 0 means one per CPU.
	Workers() int
}

// FilterConfig defines which assemblies, classes and files are part of the coverage model.
type FilterConfig interface {
	// AssemblyFilters returns the filter patterns applied to assembly names.
	AssemblyFilters() []string

	// ClassFilters returns the filter patterns applied to class names.
	ClassFilters() []string

	// FileFilters returns the filter patterns applied to file paths.
	FileFilters() []string

	// FilterFile returns the path of an optional properties file with additional filter patterns.
	FilterFile() string
}

// LogConfig defines the logging configuration.
type LogConfig interface {
	// Level returns the logging level.
	Level() string
}
