package config

// Default scan roots, relative to the working directory.
var DefaultRoots = []string{"src/app", "src/components"}

// DefaultExtensions are the eligible source suffixes.
var DefaultExtensions = []string{".tsx", ".ts", ".jsx", ".js"}

// DefaultExclusions are path substrings never scanned: build output, vendored
// modules, version control and test files.
var DefaultExclusions = []string{
	"node_modules",
	".next",
	"dist",
	"build",
	".git",
	"__tests__",
	".test.",
	".spec.",
}

const (
	DefaultThreads  = 1
	DefaultFormat   = "text"
	DefaultLogLevel = "INFO"
)

// Default returns a configuration populated with the built-in values.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills every unset field with its built-in value.
func applyDefaults(cfg *Config) {
	cfg.Logger.Level = SetThen(cfg.Logger.Level, DefaultLogLevel)
	cfg.Scan.Roots = SetThen(cfg.Scan.Roots, clone(DefaultRoots))
	cfg.Scan.Extensions = SetThen(cfg.Scan.Extensions, clone(DefaultExtensions))
	cfg.Scan.Exclusions = SetThen(cfg.Scan.Exclusions, clone(DefaultExclusions))
	cfg.Scan.Threads = SetThen(cfg.Scan.Threads, DefaultThreads)
	cfg.Scan.Format = SetThen(cfg.Scan.Format, DefaultFormat)
}

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
