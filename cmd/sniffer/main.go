/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Tablesniff detector.
Provides dialect detection, canonical re-serialization, table viewing, and
self-check commands with comprehensive configuration management and logging.
*/

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kleascm/tablesniff/cmd/sniffer/commands"
	"github.com/kleascm/tablesniff/pkg/loader"
	"github.com/kleascm/tablesniff/pkg/sniffer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string

	// Input configuration
	inputFile string

	// Detection configuration
	workers       int
	maxCandidates int
	verboseScore  bool

	// Standardize configuration
	outputFile     string
	useCRLF        bool
	noFinalNewline bool
	delimiterFlag  string
	quoteFlag      string
	escapeFlag     string

	// View configuration
	maxRows int

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	noColors    bool
)

// Process exit codes: 0 success, 1 detection failure, 2 input-read or other failure.
const (
	exitOK          = 0
	exitNoDetection = 1
	exitFailure     = 2
)

func main() {
	rootCmd := newRootCmd()

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
	os.Exit(exitOK)
}

// newRootCmd builds the root command and its subcommands.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablesniff",
		Short: "Tablesniff - Data-driven CSV dialect detection",
		Long: `Tablesniff is a data-driven dialect detector for delimited text files. Instead
of relying on fragile single-line heuristics, it searches the full space of
candidate dialects (delimiter, quote character, escape character) and scores
each by how table-like and well-typed the resulting parse is.`,
		Version: "1.0.0",

		// main prints the single formatted error and maps the exit code.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().BoolVar(&noColors, "no-colors", false, "Disable colored log output")

	// Bind persistent flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("no_colors", rootCmd.PersistentFlags().Lookup("no-colors"))

	// Add detect command
	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the dialect of a delimited text file",
		Long: `Detect the dialect of a delimited text file by exhaustively scoring every
candidate dialect. Prints the winning dialect as
delimiter=<char> quotechar=<char or none> escapechar=<char or none>.`,
		RunE: commands.RunDetect,
	}

	detectCmd.Flags().StringVar(&inputFile, "file", "", "Path or URL of the input file (required)")
	detectCmd.Flags().IntVar(&workers, "workers", 1, "Number of parallel evaluation workers")
	detectCmd.Flags().IntVar(&maxCandidates, "max-candidates", 0, "Bound on the candidate set size (0 = unbounded)")
	detectCmd.Flags().BoolVar(&verboseScore, "verbose-score", false, "Also print pattern, type, and combined scores")

	detectCmd.MarkFlagRequired("file")

	viper.BindPFlag("workers", detectCmd.Flags().Lookup("workers"))
	viper.BindPFlag("max_candidates", detectCmd.Flags().Lookup("max-candidates"))
	viper.BindPFlag("verbose_score", detectCmd.Flags().Lookup("verbose-score"))

	rootCmd.AddCommand(detectCmd)

	// Add standardize command
	standardizeCmd := &cobra.Command{
		Use:   "standardize",
		Short: "Re-serialize a file under the canonical dialect",
		Long: `Detect the dialect of a delimited text file (or use the explicitly provided
one), parse it, and re-serialize it comma-delimited with double-quote quoting,
doubled-quote escaping, and minimal quoting.`,
		RunE: commands.RunStandardize,
	}

	standardizeCmd.Flags().StringVar(&inputFile, "file", "", "Path or URL of the input file (required)")
	standardizeCmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	standardizeCmd.Flags().BoolVar(&useCRLF, "crlf", false, "Terminate rows with \\r\\n")
	standardizeCmd.Flags().BoolVar(&noFinalNewline, "no-final-newline", false, "Omit the trailing newline after the final row")
	standardizeCmd.Flags().StringVar(&delimiterFlag, "delimiter", "", "Skip detection and parse with this delimiter")
	standardizeCmd.Flags().StringVar(&quoteFlag, "quote", "", "Quote character for explicit parsing (with --delimiter)")
	standardizeCmd.Flags().StringVar(&escapeFlag, "escape", "", "Escape character for explicit parsing (with --delimiter)")

	standardizeCmd.MarkFlagRequired("file")

	viper.BindPFlag("output", standardizeCmd.Flags().Lookup("output"))
	viper.BindPFlag("crlf", standardizeCmd.Flags().Lookup("crlf"))
	viper.BindPFlag("no_final_newline", standardizeCmd.Flags().Lookup("no-final-newline"))
	viper.BindPFlag("delimiter", standardizeCmd.Flags().Lookup("delimiter"))
	viper.BindPFlag("quote", standardizeCmd.Flags().Lookup("quote"))
	viper.BindPFlag("escape", standardizeCmd.Flags().Lookup("escape"))

	rootCmd.AddCommand(standardizeCmd)

	// Add view command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Pretty-print the parsed table",
		Long: `Detect the dialect of a delimited text file, parse it, and pretty-print the
resulting table with aligned columns.`,
		RunE: commands.RunView,
	}

	viewCmd.Flags().StringVar(&inputFile, "file", "", "Path or URL of the input file (required)")
	viewCmd.Flags().IntVar(&maxRows, "max-rows", 20, "Maximum number of rows to display (0 = all)")

	viewCmd.MarkFlagRequired("file")

	viper.BindPFlag("max_rows", viewCmd.Flags().Lookup("max-rows"))

	rootCmd.AddCommand(viewCmd)

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform system checks to validate log directory writability and type-pattern
registry compilation. Useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	return rootCmd
}

// exitCodeFor maps typed failures to the documented exit codes.
func exitCodeFor(err error) int {
	var noDetection *sniffer.NoDetectionError
	if errors.As(err, &noDetection) {
		return exitNoDetection
	}
	var readErr *loader.InputReadError
	if errors.As(err, &readErr) {
		return exitFailure
	}
	return exitFailure
}
