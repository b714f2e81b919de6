// Package entry normalizes descriptor records and groups the volumes of
// multi-volume titles.
package entry

import (
	"path"
	"strings"

	"github.com/mydehq/gamedesc/internal/descriptor"
)

// Entry is a normalized descriptor record.
type Entry struct {
	descriptor.Record

	Name   string // resolved display name
	Hidden bool
	Key    string // group key; empty only for degenerate entries
}

// Normalize resolves the display name, hidden flag and group key of r.
func Normalize(r descriptor.Record) Entry {
	return Entry{
		Record: r,
		Name:   DisplayName(r.NameRaw, r.PathRaw),
		Hidden: IsHidden(r.HiddenRaw),
		Key:    GroupKey(r.NameRaw, r.PathRaw),
	}
}

// NormalizeAll normalizes records in order.
func NormalizeAll(recs []descriptor.Record) []Entry {
	out := make([]Entry, len(recs))
	for i, r := range recs {
		out[i] = Normalize(r)
	}
	return out
}

// IsHidden matches true, 1 and yes, ignoring case and surrounding whitespace.
func IsHidden(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// GroupKey is the trimmed name when it is not blank, else the raw path.
// Both review and report group on this key.
func GroupKey(nameRaw, pathRaw string) string {
	if name := strings.TrimSpace(nameRaw); name != "" {
		return name
	}
	return pathRaw
}

// DisplayName is the trimmed name, else the extensionless file name of the path.
func DisplayName(nameRaw, pathRaw string) string {
	if name := strings.TrimSpace(nameRaw); name != "" {
		return name
	}
	base := fileName(pathRaw)
	if base == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimSuffix(base, path.Ext(base)))
}

// fileName returns the last element of p for both slash styles.
func fileName(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, `\`, "/"))
	p = strings.TrimRight(p, "/")
	if p == "" || p == "." {
		return ""
	}
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	if p == "." || p == ".." {
		return ""
	}
	return p
}
