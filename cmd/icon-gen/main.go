package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"quiz-extension/internal/config"
	"quiz-extension/internal/icon"
	"quiz-extension/internal/ui"
)

func main() {
	ui.Header("Generating Icons")

	baseDir, err := config.GetBaseDir()
	if err != nil {
		ui.Error("Cannot resolve working directory: " + err.Error())
		os.Exit(1)
	}

	if err := generate(config.GetIconsDir(baseDir), config.IconSizes); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}

	ui.Println("")
	ui.Success("Done! Icons created successfully.")
}

// generate writes one checkmark icon per size into iconsDir. It stops at the
// first failure; icons written before it are left in place.
func generate(iconsDir string, sizes []int) error {
	if err := os.MkdirAll(iconsDir, config.DirPerm); err != nil {
		return errors.Wrapf(err, "create icons directory %s", iconsDir)
	}

	for _, size := range sizes {
		name := config.IconFileName(size)
		ui.Info(fmt.Sprintf("Creating %s...", name))

		path := config.GetIconPath(iconsDir, size)
		if _, err := os.Stat(path); err == nil {
			ui.Warning("Overwriting " + path)
		}

		d := icon.Descriptor{Size: size, Style: icon.StyleCheckmark}
		n, err := d.WriteFile(path)
		if err != nil {
			return errors.Wrapf(err, "create %s", name)
		}
		ui.Success(fmt.Sprintf("Created %s (%s)", path, humanize.Bytes(uint64(n))))
	}
	return nil
}
