package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"github.com/hashicorp/go-multierror"

	"github.com/mydehq/gamedesc/internal/descriptor"
	"github.com/mydehq/gamedesc/internal/entry"
	"github.com/mydehq/gamedesc/internal/types"
)

// Export is the flattened result of all platforms.
type Export struct {
	Rows      []Row
	Platforms int
	Malformed int
}

// Builder reads descriptor documents and builds export rows.
type Builder struct {
	Logger *log.Logger
	Names  func(label string) string // platform display name lookup
}

// Collect builds rows for every platform in order. Unreadable documents are
// reported and skipped; malformed ones are exported from their salvaged records.
func (b *Builder) Collect(platforms []types.Platform) (Export, error) {
	logger := b.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var (
		exp  Export
		errs *multierror.Error
	)
	for _, p := range platforms {
		doc, err := descriptor.Load(p.Path)
		if err != nil {
			logger.Warn("Failed to load descriptor", "platform", p.Label, "path", p.Path, "error", err)
			errs = multierror.Append(errs, err)
			continue
		}
		if doc.Malformed() {
			exp.Malformed++
			logger.Warn("Descriptor is malformed, using salvaged entries", "platform", p.Label, "path", p.Path)
		}

		name := p.Label
		if b.Names != nil {
			name = b.Names(p.Label)
		}

		groups := entry.Build(entry.NormalizeAll(doc.Records()))
		exp.Rows = append(exp.Rows, BuildRows(p, name, groups)...)
		exp.Platforms++
		logger.Debug("Collected", "platform", p.Label, "groups", len(groups))
	}

	SortRows(exp.Rows)
	return exp, errs.ErrorOrNil()
}

// Write encodes rows as CSV with the header line first. No byte order mark
// is written.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the report to path and returns the number of bytes
// written. Nothing is written when the report lock is held or the target
// cannot be replaced.
func WriteFile(path string, rows []Row) (int, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		return 0, fmt.Errorf("failed to encode report: %w", err)
	}

	// The lock file stays on disk so every writer locks the same inode.
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return 0, types.ErrReportLocked{Path: path, Err: err}
	}
	if !ok {
		return 0, types.ErrReportLocked{Path: path}
	}
	defer func() { _ = lock.Unlock() }()

	if f, err := os.OpenFile(path, os.O_WRONLY, 0); err == nil {
		f.Close()
	} else if !os.IsNotExist(err) {
		return 0, types.ErrReportLocked{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".gamedesc-report-*.csv")
	if err != nil {
		return 0, types.ErrReportLocked{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return 0, types.ErrReportLocked{Path: path, Err: err}
	}
	return buf.Len(), nil
}
