package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagVerbose = flag.Bool("verbose", false, "Print progress at phase boundaries")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWorkers = flag.Int("workers", -1, "Number of render workers (0 = one per CPU)")
	flagOut     = flag.String("out", "", "Output directory")
	flagFormat  = flag.String("format", "", "Image format: png, bmp or tiff")
	flagLogFile = flag.String("log-file", "", "Also write logs to this file")
)

func init() {
	flag.BoolVar(flagVerbose, "v", false, "Shorthand for -verbose")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagVerbose {
		cfg.Logging.Level = "info"
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWorkers >= 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagOut != "" {
		cfg.Render.OutputDir = *flagOut
	}
	if *flagFormat != "" {
		cfg.Render.Format = *flagFormat
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
