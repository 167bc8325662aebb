package main

import (
	"fmt"
	"os"
)

// ============================================================================
// DEVICEIQ CLI — Mobile-device usage analytics
// ============================================================================

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
