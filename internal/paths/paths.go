package paths

import (
	"os"
	"path/filepath"
)

const (
	AppIconFileName   = "app_icon.png"
	LauncherDirName   = "icon_physics_demo_tmp"
	LauncherPrefix    = "ic_launcher_"
	LauncherExtension = ".png"
	DirPerm           = 0755
	FilePerm          = 0644
)

// LauncherFileName returns the output file name for a density bucket.
func LauncherFileName(density string) string {
	return LauncherPrefix + density + LauncherExtension
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
