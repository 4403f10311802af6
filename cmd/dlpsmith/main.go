// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dlpsmith CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dlpsmith CLI.
var rootCmd = &cobra.Command{
	Use:   "dlpsmith",
	Short: "Synthetic sensitive-document generator for DLP/EDR testing",
	Long: `dlpsmith generates files full of fake-but-realistic sensitive data
(SSNs, card numbers, medical records, credentials) in eleven container
formats, for exercising Data Loss Prevention and Endpoint Detection tooling.

Every generated file is tracked in a JSON manifest; the clean command
removes everything the manifest lists and nothing else. No real personal
information is ever produced: SSN areas sit in the never-allocated 900
block, phone numbers use the 555 exchange, and card numbers are published
test numbers or random digits.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dlpsmith.yaml or ~/.config/dlpsmith/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dlpsmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dlpsmith"))
		}
	}

	viper.SetEnvPrefix("DLPSMITH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
