package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tailorcv/internal/observability"
	"github.com/jonathan/tailorcv/internal/profile"
	"github.com/jonathan/tailorcv/internal/selection"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a selection plan against a profile",
	Long:  "Run the selection validator alone and print every violation, without contacting any LLM provider.",
	RunE:  runCheck,
}

var (
	checkProfilePath   string
	checkSelectionPath string
)

func init() {
	checkCmd.Flags().StringVarP(&checkProfilePath, "profile", "p", "", "Path to profile YAML file (required)")
	checkCmd.Flags().StringVarP(&checkSelectionPath, "selection", "s", "", "Path to selection plan JSON file (required)")

	checkCmd.MarkFlagRequired("profile")
	checkCmd.MarkFlagRequired("selection")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	prof, err := profile.Load(checkProfilePath)
	if err != nil {
		return err
	}

	plan, err := selection.LoadPlan(checkSelectionPath)
	if err != nil {
		return err
	}

	if failure := selection.Validate(prof, plan); failure != nil {
		observability.NewPrinter(os.Stdout).PrintViolations(failure.Violations)
		return errors.New("selection plan is invalid")
	}

	fmt.Fprintln(os.Stdout, "Selection plan is valid")
	return nil
}
