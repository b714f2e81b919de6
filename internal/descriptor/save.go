package descriptor

import (
	"fmt"
	"io"
	"os"
	"time"
)

const backupTimeLayout = "20060102_150405"

// BackupName returns <path>.<yyyyMMdd_HHmmss>.bak for the given instant.
func BackupName(path string, t time.Time) string {
	return fmt.Sprintf("%s.%s.bak", path, t.Format(backupTimeLayout))
}

// Backup copies the file at path byte for byte to its timestamped backup name.
// An existing backup is never overwritten.
func Backup(path string, t time.Time) (string, error) {
	dst := BackupName(path, t)

	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open descriptor for backup: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat descriptor: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return dst, nil
}

// Write serializes the document over its source file, keeping the file mode.
func (d *Document) Write() error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(d.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(d.Path, data, mode); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	d.dirty = false
	return nil
}
