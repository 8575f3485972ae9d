package cmd

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
)

// loadROM returns the path and bytes of the ROM to run. If a path was
// given on the command line it is read directly; otherwise a native
// file-open dialog prompts the user, matching the teacher's own
// ROM-opening affordance.
func loadROM(args []string) (path string, data []byte, err error) {
	if len(args) > 0 {
		path = args[0]
	} else {
		path, err = dialog.File().Filter("CHIP-8 ROM", "ch8", "c8", "rom").Title("Open CHIP-8 ROM").Load()
		if err != nil {
			return "", nil, fmt.Errorf("no ROM selected: %w", err)
		}
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	return path, data, nil
}
