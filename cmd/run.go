package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravelwind/chip8vm/chip8"
	"github.com/gravelwind/chip8vm/internal/flagstore"
	"github.com/gravelwind/chip8vm/internal/host"
)

const frameInterval = time.Second / 60

func runChip8VM(cmd *cobra.Command, args []string) {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	romPath, rom, err := loadROM(args)
	if err != nil {
		logger.Error("failed to load ROM", zap.Error(err))
		os.Exit(1)
	}

	quirkMemory, _ := cmd.Flags().GetBool("quirk-memory")
	quirkShift, _ := cmd.Flags().GetBool("quirk-shift")
	ipf, _ := cmd.Flags().GetInt("instructions-per-frame")
	flagsPath, _ := cmd.Flags().GetString("flags-file")
	if flagsPath == "" {
		flagsPath = strings.TrimSuffix(romPath, filepath.Ext(romPath)) + ".flags"
	}

	quirks := chip8.Quirks{Memory: quirkMemory, Shift: quirkShift}
	vm := chip8.NewVM(
		quirks,
		chip8.WithInstructionsPerFrame(ipf),
		chip8.WithFlagsStore(flagstore.NewFileStore(flagsPath)),
	)

	if err := vm.LoadProgram(rom); err != nil {
		logger.Error("failed to load program", zap.Error(err), zap.String("rom", romPath))
		os.Exit(1)
	}

	logger.Info("starting chip8vm",
		zap.String("rom", romPath),
		zap.Bool("quirk_memory", quirkMemory),
		zap.Bool("quirk_shift", quirkShift),
		zap.Int("instructions_per_frame", ipf),
	)

	win, err := host.NewWindow(logger)
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for range ticker.C {
		keys, quit := win.PollInput()
		if quit {
			break
		}

		result := vm.Tick(keys)

		win.Present(vm.Framebuffer())
		win.QueueAudio(result.AudioOn)

		if result.Exited {
			logger.Info("program executed EXIT")
			break
		}
	}
}
