/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: view.go
Description: View command implementation for the Tablesniff detector. Detects
the input dialect, parses the table, and pretty-prints it with aligned
columns for quick inspection.
*/

package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/tablesniff/pkg/parser"
	"github.com/kleascm/tablesniff/pkg/sniffer"
)

// RunView pretty-prints the parsed table
func RunView(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	text, source, err := LoadInput(cmd)
	if err != nil {
		return err
	}

	result, err := sniffer.New(&sniffer.Config{Logger: Logger()}).Sniff(text)
	if err != nil {
		return err
	}

	table := parser.Parse(text, result.Dialect)

	fmt.Printf("📄 %s\n", source)
	fmt.Printf("🔍 %s\n", result.Dialect)
	fmt.Printf("📊 %d rows × %d columns\n\n", result.Score.Rows, result.Score.Columns)

	maxRows := viper.GetInt("max_rows")
	rows := table.Rows
	truncated := false
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
		truncated = true
	}

	printAligned(rows)

	if truncated {
		fmt.Printf("... (%d more rows)\n", len(table.Rows)-maxRows)
	}

	return nil
}

// printAligned renders rows with columns padded to the widest cell.
func printAligned(rows [][]string) {
	widths := make([]int, 0)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		fmt.Println("│ " + strings.Join(parts, " │ ") + " │")
	}
}
