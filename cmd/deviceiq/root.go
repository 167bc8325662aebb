package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/deviceiq-labs/deviceiq/config"
	"github.com/deviceiq-labs/deviceiq/dataset"
)

const version = "1.0.0"

var (
	cfgFile  string
	dataFile string
	format   string

	cfg   *cfgpkg.Config
	store = dataset.NewStore()
)

var rootCmd = &cobra.Command{
	Use:   "deviceiq",
	Short: "DeviceIQ: analytics and what-if simulation for mobile-device usage data",
	Long: `DeviceIQ computes descriptive statistics, per-segment breakdowns,
correlation analysis, role-specific insight reports, and deterministic
what-if projections over a fixed-schema CSV of mobile-device usage records.`,
	Version: version,
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.deviceiq/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "path to the usage CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: json, pretty, text (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = cfgpkg.Default()
		return
	}
	cfg = c
}

// resolveDataFile picks the data source: --file beats the config default.
func resolveDataFile() (string, error) {
	if dataFile != "" {
		return dataFile, nil
	}
	if cfg != nil && cfg.DataFile != "" {
		return cfg.DataFile, nil
	}
	return "", fmt.Errorf("no data file: pass --file or set data_file in the config")
}

// resolveFormat picks the output format: --format beats the config default.
func resolveFormat() string {
	if format != "" {
		return format
	}
	if cfg != nil && cfg.Format != "" {
		return cfg.Format
	}
	return "json"
}

// loadDataset resolves the source path and returns the cached snapshot.
func loadDataset() (*dataset.Dataset, error) {
	path, err := resolveDataFile()
	if err != nil {
		return nil, err
	}
	return store.Get(path)
}
