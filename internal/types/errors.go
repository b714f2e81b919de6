package types

import "fmt"

// ErrMalformedDescriptor is reported when a descriptor document could only be salvaged.
type ErrMalformedDescriptor struct {
	Path string
}

func (e ErrMalformedDescriptor) Error() string {
	return fmt.Sprintf("malformed descriptor, edits disabled: %s", e.Path)
}

// ErrReportLocked is returned when another process holds the report lock
// or the report target cannot be written.
type ErrReportLocked struct {
	Path string
	Err  error
}

func (e ErrReportLocked) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("report not writable: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("report is locked by another process: %s", e.Path)
}

func (e ErrReportLocked) Unwrap() error {
	return e.Err
}

// ErrNoPlatforms is returned when discovery finds no descriptor documents.
type ErrNoPlatforms struct {
	Root string
}

func (e ErrNoPlatforms) Error() string {
	return fmt.Sprintf("no descriptor files found under: %s", e.Root)
}
