package system

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func statIsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func DoesFileExist(path string) bool {
	isDir, err := statIsDir(path)
	return err == nil && !isDir
}

func DoesDirExist(path string) bool {
	isDir, err := statIsDir(path)
	return err == nil && isDir
}

func VerifyDirExist(path string) error {
	isDir, err := statIsDir(path)
	if err != nil {
		return err
	}
	if !isDir {
		return errors.Errorf("%s is not a directory", path)
	}
	return nil
}

func EnsureDirExist(path string) error {
	if DoesDirExist(path) {
		return nil
	}
	return os.MkdirAll(path, os.ModePerm)
}

// PathExpand replaces a leading "~" with the current user's home directory.
func PathExpand(rawPath string) string {
	if !strings.HasPrefix(rawPath, "~") {
		return rawPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return rawPath
	}
	return homeDir + rawPath[1:]
}

// resolvePath expands and absolutizes a configured path against baseDir.
func resolvePath(baseDir string, cfgPath string) (string, error) {
	resolved := PathExpand(cfgPath)
	if resolved == "" {
		return "", errors.New("path cannot be an empty value")
	}
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(baseDir, resolved)
	}
	return filepath.Clean(resolved), nil
}

func ResolveFile(baseDir string, cfgFile string, mustExist bool) (string, error) {
	file, err := resolvePath(baseDir, cfgFile)
	if err != nil {
		return file, err
	}
	if mustExist && !DoesFileExist(file) {
		return file, errors.Errorf("file %s doesn't exist", file)
	}
	return file, nil
}

func ResolveDirectory(baseDir string, cfgDir string, mustExist bool) (string, error) {
	dir, err := resolvePath(baseDir, cfgDir)
	if err != nil {
		return dir, err
	}
	if mustExist {
		if err := VerifyDirExist(dir); err != nil {
			return dir, err
		}
	}
	return dir, nil
}

// FindFileUpwards walks up from startDir looking for a directory that
// contains fileName.
func FindFileUpwards(startDir string, fileName string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		if DoesFileExist(filepath.Join(dir, fileName)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf("no directory from '%s' upwards contains '%s'", startDir, fileName)
		}
		dir = parent
	}
}
