//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 /data/data/{package}/saves 并确认可写
func EnsureStorageDir() error {
	root, err := androidDataDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(root, "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	marker := filepath.Join(dir, ".writable")
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(marker)
}

// GetStoragePath 返回应用数据目录，无法识别包名时为空
func GetStoragePath() string {
	root, err := androidDataDir()
	if err != nil {
		return ""
	}
	return root
}

// androidDataDir 从 /proc/self/cmdline 取包名
func androidDataDir() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("read cmdline: %w", err)
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	pkg := string(bytes.TrimSpace(data))
	if pkg == "" {
		return "", fmt.Errorf("empty package name in /proc/self/cmdline")
	}
	return filepath.Join("/data/data", pkg), nil
}
