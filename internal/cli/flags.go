package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tossicat/internal/verifier"
)

// Output modes
const (
	ModePostfix   = "postfix"
	ModePick      = "pick"
	ModeTransform = "transform"
)

// Export formats
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

var (
	modes         = []string{ModePostfix, ModePick, ModeTransform}
	exportFormats = []string{FormatCSV, FormatSQLite}
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	Verbose  bool
	LogLevel string

	// Resolution flags
	OutputMode string
	Pick       bool
	Transform  bool
	Sentence   string
	Number     string

	// Verification flags
	Strict    bool
	MaxLength int

	// Batch flags
	BatchFile string
	Workers   int

	// Export flags
	ExportPath   string
	ExportFormat string
	History      bool

	ListParticles bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:     "info",
		OutputMode:   ModePostfix,
		MaxLength:    verifier.MaxWordLength,
		Workers:      4,
		ExportFormat: FormatCSV,
	}
}

// Mode returns the effective output mode. The --pick and --transform
// shortcuts win over --mode.
func (f *Flags) Mode() string {
	switch {
	case f.Pick:
		return ModePick
	case f.Transform:
		return ModeTransform
	default:
		return f.OutputMode
	}
}

// Validate checks flag combinations and ranges.
func (f *Flags) Validate() error {
	if f.Pick && f.Transform {
		return fmt.Errorf("--pick and --transform are mutually exclusive")
	}
	if !lo.Contains(modes, f.Mode()) {
		return fmt.Errorf("unknown mode %q (want one of %v)", f.Mode(), modes)
	}
	if !lo.Contains(exportFormats, f.ExportFormat) {
		return fmt.Errorf("unknown export format %q (want one of %v)", f.ExportFormat, exportFormats)
	}
	if f.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", f.Workers)
	}
	if f.MaxLength < 1 {
		return fmt.Errorf("max length must be at least 1, got %d", f.MaxLength)
	}
	if f.History && f.ExportPath == "" {
		return fmt.Errorf("--history needs --export pointing at a database")
	}
	return nil
}

// ApplyConfig copies values from viper into flags. Flags given on the
// command line are bound to the same keys and therefore take precedence
// over the config file and environment.
func ApplyConfig(f *Flags) {
	f.OutputMode = viper.GetString("mode")
	f.Strict = viper.GetBool("verify.strict")
	f.MaxLength = viper.GetInt("verify.max_word_length")
	f.Workers = viper.GetInt("batch.workers")
	f.ExportFormat = viper.GetString("export.format")
	f.ExportPath = viper.GetString("export.path")
	f.LogLevel = viper.GetString("log.level")
}
