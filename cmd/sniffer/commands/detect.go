/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detect.go
Description: Dialect detection command implementation for the Tablesniff
detector. Loads the input text, runs the exhaustive candidate search, and
prints the winning dialect in the documented key=value format.
*/

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/tablesniff/pkg/sniffer"
)

// RunDetect detects the dialect of the input file and prints it
func RunDetect(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging for detection
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	text, source, err := LoadInput(cmd)
	if err != nil {
		return err
	}

	s := sniffer.New(&sniffer.Config{
		Workers:       viper.GetInt("workers"),
		MaxCandidates: viper.GetInt("max_candidates"),
		Logger:        Logger(),
	})

	result, err := s.Sniff(text)
	if err != nil {
		var noDetection *sniffer.NoDetectionError
		if errors.As(err, &noDetection) {
			LogNoDetection(source, noDetection.Reason)
		}
		return err
	}
	LogDetection(source, result)

	// The dialect line is the machine-readable contract of this command;
	// everything decorative goes through the logger instead.
	fmt.Println(result.Dialect.String())

	if viper.GetBool("verbose_score") {
		fmt.Printf("pattern_score=%.6f\n", result.Score.PatternScore)
		fmt.Printf("type_score=%.6f\n", result.Score.TypeScore)
		fmt.Printf("combined_score=%.6f\n", result.Score.Combined)
		fmt.Printf("candidates=%d\n", result.Candidates)
		fmt.Printf("rows=%d columns=%d\n", result.Score.Rows, result.Score.Columns)
	}

	return nil
}
