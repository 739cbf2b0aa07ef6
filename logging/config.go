package logging

// LoggerConfig holds logger configuration.
//
// Trimmed from the multi-tenant Fulmen logging standard: a batch search
// library has one process, one log stream, and no need for profile
// enforcement, redaction middleware, or throttling policy. Sinks and
// severity remain because every CLI invocation still needs to choose
// between a human console and a rotated file.
type LoggerConfig struct {
	DefaultLevel string         `json:"defaultLevel"`
	Service      string         `json:"service"`
	Component    string         `json:"component,omitempty"`
	Environment  string         `json:"environment"`
	Sinks        []SinkConfig   `json:"sinks"`
	StaticFields map[string]any `json:"staticFields,omitempty"`

	EnableStacktrace bool `json:"enableStacktrace"`
}

// SinkConfig defines an output sink.
type SinkConfig struct {
	Type    string             `json:"type"` // console, file
	Level   string             `json:"level,omitempty"`
	Format  string             `json:"format"` // json, console
	Console *ConsoleSinkConfig `json:"console,omitempty"`
	File    *FileSinkConfig    `json:"file,omitempty"`
}

// ConsoleSinkConfig configures console output. Stream is always stderr;
// stdout is reserved for search results and corpus output.
type ConsoleSinkConfig struct {
	Colorize bool `json:"colorize"`
}

// FileSinkConfig configures rotated file output via lumberjack.
type FileSinkConfig struct {
	Path       string `json:"path"`
	MaxSize    int    `json:"maxSize"`    // MB
	MaxAge     int    `json:"maxAge"`     // days
	MaxBackups int    `json:"maxBackups"` // number of old files to keep
	Compress   bool   `json:"compress"`
}

// DefaultConfig returns a default logger configuration: a single
// non-colorized console sink at INFO, writing to stderr.
func DefaultConfig(service string) *LoggerConfig {
	return &LoggerConfig{
		DefaultLevel: "INFO",
		Service:      service,
		Environment:  "development",
		Sinks: []SinkConfig{
			{
				Type:    "console",
				Format:  "console",
				Console: &ConsoleSinkConfig{Colorize: false},
			},
		},
		StaticFields: make(map[string]any),
	}
}
