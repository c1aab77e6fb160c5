package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the file search and the command line
overrides have been applied, as YAML. Redirect it to ~/.fpsdemo/config.yaml
to start a custom configuration.`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("%v", err)
	}
	if err := enc.Close(); err != nil {
		fail("%v", err)
	}
}
