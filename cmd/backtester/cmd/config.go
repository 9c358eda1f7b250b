package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/backtester/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write a default configuration file",
	RunE:  runConfig,
}

var configOut string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&configOut, "out", "o", "", "write defaults to this path instead of stdout")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	if configOut != "" {
		if err := cfg.SaveToFile(configOut); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configOut)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
