/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: Self-check command implementation for the Tablesniff detector.
Validates log directory writability, type-pattern registry compilation, and
end-to-end detection on a built-in sample. Useful for CI/CD integration.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/tablesniff/pkg/sniffer"
	"github.com/kleascm/tablesniff/pkg/typing"
)

// selfCheckSample is a tiny known-dialect file the end-to-end check must
// detect as comma-delimited.
const selfCheckSample = "id,name,joined\n1,alice,2021-03-01\n2,bob,2021-04-15\n3,carol,2021-06-30\n"

// PerformSelfCheck validates system prerequisites
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Tablesniff - Self Check")
	fmt.Println("==========================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := 0
	failures := 0

	// Check log directory writability
	checks++
	logDir := viper.GetString("log_dir")
	if logDir == "" {
		logDir = "./logs"
	}
	if err := checkLogDir(logDir); err != nil {
		failures++
		fmt.Printf("❌ Log directory: %v\n", err)
	} else {
		fmt.Printf("✅ Log directory writable: %s\n", logDir)
	}

	// Check type-pattern registry compilation
	checks++
	reg := typing.NewRegistry()
	if reg.Classify("42") != typing.LabelInteger || reg.Classify("3.14") != typing.LabelFloat {
		failures++
		fmt.Println("❌ Type-pattern registry misclassifies reference values")
	} else {
		fmt.Println("✅ Type-pattern registry compiled")
	}

	// End-to-end detection on the built-in sample
	checks++
	result, err := sniffer.Sniff(selfCheckSample)
	if err != nil || result.Dialect.Delimiter != ',' {
		failures++
		fmt.Println("❌ End-to-end detection failed on built-in sample")
	} else {
		fmt.Printf("✅ End-to-end detection: %s\n", result.Dialect)
	}

	fmt.Println()
	if failures > 0 {
		return fmt.Errorf("self check failed: %d of %d checks failed", failures, checks)
	}
	fmt.Printf("✨ All %d checks passed!\n", checks)
	return nil
}

// checkLogDir verifies the log directory exists (creating it if needed) and
// is writable.
func checkLogDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	probe := filepath.Join(dir, ".tablesniff_check")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	os.Remove(probe)
	return nil
}
