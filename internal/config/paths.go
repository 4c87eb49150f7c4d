package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Directory the extension manifest loads its icons from
	IconsDirName = "icons"

	DirPerm  = 0755
	FilePerm = 0644
)

// Sizes required by the extension manifest (toolbar, management page, store)
var IconSizes = []int{16, 48, 128}

// Layout:
// Root/
//  ├── cmd/icon-gen/
//  └── icons/ (icon16.png, icon48.png, icon128.png)

// GetBaseDir returns the directory the icons directory is created in.
// The generator is run from the extension root, so this is the working directory.
func GetBaseDir() (string, error) {
	return os.Getwd()
}

func GetIconsDir(baseDir string) string {
	return filepath.Join(baseDir, IconsDirName)
}

func IconFileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

func GetIconPath(iconsDir string, size int) string {
	return filepath.Join(iconsDir, IconFileName(size))
}
