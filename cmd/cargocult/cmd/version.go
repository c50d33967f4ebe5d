// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cargocult "github.com/gizzahub/cargocult"
	"github.com/gizzahub/cargocult/internal/cargocli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: cargocli.QuickStartHelp(`  # Show full version info
  cargocult version

  # Show short version number
  cargocult version --short`),
	Run: func(cmd *cobra.Command, args []string) {
		short, _ := cmd.Flags().GetBool("short")
		if short {
			fmt.Println(cargocult.ShortVersion())
			return
		}
		fmt.Println(cargocult.VersionString())
		fmt.Printf("Go version: %s\n", cargocult.VersionInfo()["goVersion"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print only the version number")
}
