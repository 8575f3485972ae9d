package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd is the base for all commands.
var rootCmd = &cobra.Command{
	Use:   "chip8vm [rom]",
	Short: "chip8vm is a CHIP-8 / SUPER-CHIP virtual machine",
	Long:  "chip8vm is a CHIP-8 / SUPER-CHIP virtual machine",
	Run:   runChip8VM,
}

func init() {
	rootCmd.Flags().Bool("quirk-memory", false, "enable the SUPER-CHIP memory quirk (FX55/FX65 leaves I unchanged)")
	rootCmd.Flags().Bool("quirk-shift", false, "enable the SUPER-CHIP shift quirk (8XY6/8XYE shift VX in place)")
	rootCmd.Flags().Int("instructions-per-frame", 10, "instructions executed per 60 Hz frame")
	rootCmd.Flags().String("flags-file", "", "path to the persistent RPL flags file (defaults to <rom>.flags)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs chip8vm according to the user's flags/arguments.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		return err
	}
	return nil
}
