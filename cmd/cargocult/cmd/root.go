// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package cmd implements the CLI commands for cargocult.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gizzahub/cargocult/internal/cargocli"
)

var (
	// appVersion is set by main.go.
	appVersion string

	// Global flags.
	verbose bool
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cargocult",
	Short: "Scaffold and materialize project files from thundercloud niches",
	Long: `cargocult composes per-project overlays ("niches") onto reusable content
libraries ("thunderclouds"), splicing feature-conditioned options and
fragments into a project tree.
` + cargocli.QuickStartHelp(`  # Run every configured niche against the current directory
  cargocult run

  # Scaffold a starter CargoCult.toml and niches directory
  cargocult init

  See 'cargocult run --help' for the project-root/niches flags.`),
	Version:       appVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once by main.main.
func Execute(version string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetUsageTemplate(usageTemplate)
	applyUsageTemplateRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func applyUsageTemplateRecursive(cmd *cobra.Command) {
	cmd.SetUsageTemplate(usageTemplate)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	for _, c := range cmd.Commands() {
		applyUsageTemplateRecursive(c)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (warnings and errors only)")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

const usageTemplate = `{{if .Runnable}}` + cargocli.ColorGreenBold + `Usage:` + cargocli.ColorReset + `
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}` + cargocli.ColorGreenBold + `Usage:` + cargocli.ColorReset + `
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

` + cargocli.ColorGreenBold + `Examples:` + cargocli.ColorReset + `
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

` + cargocli.ColorGreenBold + `Flags:` + cargocli.ColorReset + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

` + cargocli.ColorGreenBold + `Global Flags:` + cargocli.ColorReset + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
