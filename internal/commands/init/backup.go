package initcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// backupSuffix is appended to the config path to name the copy kept by
// config init before it writes a new file. Only one generation is kept.
const backupSuffix = ".bak"

// BackupExisting copies the config at path to path+".bak" with the same
// permissions and returns the copy's path. A missing config needs no copy
// and returns "".
func BackupExisting(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}

	dest := path + backupSuffix
	if err := os.WriteFile(dest, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	// WriteFile keeps the mode of an existing backup.
	if err := os.Chmod(dest, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("chmod %s: %w", dest, err)
	}
	return dest, nil
}

// configFileExists reports whether a config file is already present at path.
func configFileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
