package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the reference host's release version.
const version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the chip8vm version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}
