/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: standardize.go
Description: Standardize command implementation for the Tablesniff detector.
Parses the input under the detected (or explicitly given) dialect and
re-serializes it under the canonical comma-delimited, double-quoted dialect
with minimal quoting.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/tablesniff/pkg/dialect"
	"github.com/kleascm/tablesniff/pkg/parser"
	"github.com/kleascm/tablesniff/pkg/sniffer"
	"github.com/kleascm/tablesniff/pkg/writer"
)

// RunStandardize re-serializes the input file under the canonical dialect
func RunStandardize(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	text, _, err := LoadInput(cmd)
	if err != nil {
		return err
	}

	d, err := resolveDialect(text)
	if err != nil {
		return err
	}

	table := parser.Parse(text, d)

	w := writer.NewCanonical()
	w.UseCRLF = viper.GetBool("crlf")
	w.TrailingNewline = !viper.GetBool("no_final_newline")

	dst := os.Stdout
	if output := viper.GetString("output"); output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		dst = f
	}

	if err := w.WriteTable(dst, table.Rows); err != nil {
		return fmt.Errorf("failed to write standardized output: %w", err)
	}

	return nil
}

// resolveDialect uses the explicit dialect flags when a delimiter was given,
// otherwise runs detection.
func resolveDialect(text string) (dialect.Dialect, error) {
	if delimValue := viper.GetString("delimiter"); delimValue != "" {
		delim, err := ParseCharFlag("delimiter", delimValue)
		if err != nil {
			return dialect.Dialect{}, err
		}
		quote, err := ParseCharFlag("quote", viper.GetString("quote"))
		if err != nil {
			return dialect.Dialect{}, err
		}
		escape, err := ParseCharFlag("escape", viper.GetString("escape"))
		if err != nil {
			return dialect.Dialect{}, err
		}
		d := dialect.Dialect{Delimiter: delim, Quote: quote, Escape: escape}
		if !d.Valid() {
			return dialect.Dialect{}, fmt.Errorf("invalid explicit dialect: %s", d)
		}
		return d, nil
	}

	result, err := sniffer.New(&sniffer.Config{Logger: Logger()}).Sniff(text)
	if err != nil {
		return dialect.Dialect{}, err
	}
	return result.Dialect, nil
}
