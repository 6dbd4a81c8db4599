package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tossicat/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tossicat [word] [particle]",
		Short: "Korean particle (tossi) selector",
		Long: `tossicat attaches Korean particles to words, choosing the form
that matches the word's final consonant.

Examples:
  tossicat 집 로                           # 집으로
  tossicat --pick 나무 을                  # 를
  tossicat --sentence "{철수, 은} 학생이다."  # 철수는 학생이다.
  tossicat --batch words.txt --export out.csv
  tossicat --number 1234                  # 천이백삼십사`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.tossicat.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Resolution flags
	cmd.Flags().StringVarP(&flags.OutputMode, "mode", "m", flags.OutputMode, "Output mode: postfix, pick or transform")
	cmd.Flags().BoolVar(&flags.Pick, "pick", false, "Print only the chosen particle form")
	cmd.Flags().BoolVar(&flags.Transform, "transform", false, "Print word and particle form separately")
	cmd.Flags().StringVarP(&flags.Sentence, "sentence", "s", "", "Fill a sentence template like \"{철수, 은} 학생이다.\"")
	cmd.Flags().StringVar(&flags.Number, "number", "", "Print the Korean reading of a number")

	// Verification flags
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Reject unknown particles and overlong words")
	cmd.Flags().IntVar(&flags.MaxLength, "max-length", flags.MaxLength, "Maximum word length in strict mode")

	// Batch flags
	cmd.Flags().StringVarP(&flags.BatchFile, "batch", "b", "", "Process entries from file (\"word = particle\" or a template per line)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Concurrent workers for batch processing")

	// Export flags
	cmd.Flags().StringVarP(&flags.ExportPath, "export", "o", "", "Write results to this file or directory")
	cmd.Flags().StringVar(&flags.ExportFormat, "export-format", flags.ExportFormat, "Export format: csv or sqlite")
	cmd.Flags().BoolVar(&flags.History, "history", false, "List runs stored in the --export database")

	cmd.Flags().BoolVar(&flags.ListParticles, "list-particles", false, "List the particles accepted in strict mode")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("mode", cmd.Flags().Lookup("mode"))
	viper.BindPFlag("verify.strict", cmd.Flags().Lookup("strict"))
	viper.BindPFlag("verify.max_word_length", cmd.Flags().Lookup("max-length"))
	viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("export.format", cmd.Flags().Lookup("export-format"))
	viper.BindPFlag("export.path", cmd.Flags().Lookup("export"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".tossicat" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tossicat")
	}

	// Environment variables, e.g. TOSSICAT_VERIFY_STRICT
	viper.SetEnvPrefix("TOSSICAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
