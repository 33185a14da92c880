package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	miet "github.com/gipersonic/miet"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of miet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("miet version %s\n", strings.TrimSpace(miet.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
