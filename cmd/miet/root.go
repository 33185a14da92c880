package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "miet",
	Short: "Miet is a menu-driven tutoring bot engine",
	Long:  `Miet serves hierarchical study content through a conversational menu, with per-user sessions, quizzes and an operator channel.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "catalog.yaml", "Path to the catalog YAML file")
	rootCmd.PersistentFlags().String("quiz", "", "Path to the quiz definitions YAML file")
	rootCmd.PersistentFlags().String("resources", "", "Path to the resource document repository")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
