// Package report flattens descriptor documents into one tabular export with a
// row per title.
package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mydehq/gamedesc/internal/entry"
	"github.com/mydehq/gamedesc/internal/types"
)

// Entry classifications.
const (
	MultiM3U = "Multi-M3U"
	MultiXML = "Multi-XML"
	Single   = "Single"
)

// Columns is the fixed export header.
var Columns = []string{"Title", "PlatformName", "EntryType", "DiskCount", "PlatformFolder", "FilePath", "XMLState"}

// Row is one exported title.
type Row struct {
	Title          string
	PlatformName   string
	EntryType      string
	DiskCount      int
	PlatformFolder string
	FilePath       string
	XMLState       string
}

// Record returns the row as CSV fields in Columns order.
func (r Row) Record() []string {
	return []string{
		r.Title,
		r.PlatformName,
		r.EntryType,
		strconv.Itoa(r.DiskCount),
		r.PlatformFolder,
		r.FilePath,
		r.XMLState,
	}
}

// Classify returns the entry type of a group.
func Classify(g *entry.Group) string {
	switch {
	case entry.IsPlaylist(g.PrimaryEntry().PathRaw):
		return MultiM3U
	case g.Multi():
		return MultiXML
	default:
		return Single
	}
}

// BuildRows derives one row per group from its primary.
func BuildRows(platform types.Platform, platformName string, groups []*entry.Group) []Row {
	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		p := g.PrimaryEntry()
		rows = append(rows, Row{
			Title:          Title(p.Name, p.NameRaw),
			PlatformName:   platformName,
			EntryType:      Classify(g),
			DiskCount:      len(g.Members),
			PlatformFolder: platform.Label,
			FilePath:       p.PathRaw,
			XMLState:       p.Provenance.String(),
		})
	}
	return rows
}

// SortRows orders rows by platform name, title and path.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(a, b int) bool {
		ra, rb := rows[a], rows[b]
		if ra.PlatformName != rb.PlatformName {
			return ra.PlatformName < rb.PlatformName
		}
		ta, tb := strings.ToLower(ra.Title), strings.ToLower(rb.Title)
		if ta != tb {
			return ta < tb
		}
		return ra.FilePath < rb.FilePath
	})
}
