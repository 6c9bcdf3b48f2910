/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Tablesniff commands. Provides common
configuration loading, logging setup, dialect flag parsing, and input loading
used across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/tablesniff/pkg/dialect"
	"github.com/kleascm/tablesniff/pkg/loader"
	"github.com/kleascm/tablesniff/pkg/logging"
	"github.com/kleascm/tablesniff/pkg/sniffer"
)

// appLogger is the process-wide logging system, built once per command
// invocation by SetupLogging and released by CloseLogging.
var appLogger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("TABLESNIFF")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logging system from the bound flags: level,
// format, output directory, rotation count, and colors.
func SetupLogging() error {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Colors:    !viper.GetBool("no_colors"),
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	appLogger = logger
	return nil
}

// Logger returns the logrus logger configured by SetupLogging, falling back
// to the standard logger before setup.
func Logger() *logrus.Logger {
	if appLogger == nil {
		return logrus.StandardLogger()
	}
	return appLogger.GetLogger()
}

// CloseLogging closes the log file and prunes log files beyond the rotation
// count. Commands defer it after a successful SetupLogging.
func CloseLogging() {
	if appLogger != nil {
		appLogger.Close()
		appLogger = nil
	}
}

// LogDetection records a successful detection with its source context.
func LogDetection(source string, result *sniffer.DetectionResult) {
	if appLogger != nil {
		appLogger.LogDetection(source, result.Dialect.String(), result.Score.Combined, result.Candidates, result.Elapsed)
	}
}

// LogNoDetection records a detection failure with its source context.
func LogNoDetection(source, reason string) {
	if appLogger != nil {
		appLogger.LogNoDetection(source, reason)
	}
}

// LoadInput fetches the decoded text for the invoking command's file flag.
// Several commands declare their own --file flag, so the value is read from
// the command rather than a shared viper key.
func LoadInput(cmd *cobra.Command) (string, string, error) {
	source, _ := cmd.Flags().GetString("file")
	if source == "" {
		source = viper.GetString("file")
	}
	if source == "" {
		return "", "", fmt.Errorf("no input file specified")
	}
	text, err := loader.Load(source)
	if err != nil {
		return "", source, err
	}
	return text, source, nil
}

// ParseCharFlag parses a single-character dialect flag value. Accepts the
// spellings \t, tab, space, and none in addition to a literal character.
func ParseCharFlag(name, value string) (rune, error) {
	switch value {
	case "", "none":
		return dialect.None, nil
	case "\\t", "tab":
		return '\t', nil
	case "space":
		return ' ', nil
	}
	runes := []rune(value)
	if len(runes) != 1 {
		return dialect.None, fmt.Errorf("flag --%s must be a single character, got %q", name, value)
	}
	return runes[0], nil
}
