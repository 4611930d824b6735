package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tailorcv/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long:  "Write a config file with default settings and report which provider API key environment variables are currently set.",
	RunE:  runInit,
}

var (
	initConfigPath string
	initForce      bool
)

func init() {
	initCmd.Flags().StringVar(&initConfigPath, "config", "", "Config file path (default: XDG config directory)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ResolvePath(initConfigPath)
	if path == "" {
		return fmt.Errorf("could not determine a config path; pass --config")
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n\n", path)

	fmt.Fprintln(os.Stdout, "API key environment variables:")
	for _, envVar := range []string{config.EnvGeminiAPIKey, config.EnvAnthropicAPIKey} {
		status := "not set"
		if os.Getenv(envVar) != "" {
			status = "set"
		}
		fmt.Fprintf(os.Stdout, "  %-18s %s\n", envVar, status)
	}
	return nil
}
