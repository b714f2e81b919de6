// Package descriptor reads, edits and writes per-platform game descriptor documents.
package descriptor

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// Provenance records how a record was recovered from its document.
type Provenance int

const (
	Normal Provenance = iota
	Malformed
)

func (p Provenance) String() string {
	if p == Malformed {
		return "Malformed"
	}
	return "Normal"
}

// Record is one game entry as found in the document. Index is the entry's
// position in the document's game list and is the only handle used to
// request mutations.
type Record struct {
	Index      int
	NameRaw    string
	PathRaw    string
	HiddenRaw  string
	Provenance Provenance
}

// Document is a loaded descriptor. Game elements stay private to the package;
// callers address them through Record.Index.
type Document struct {
	Path string

	tree       *etree.Document
	games      []*etree.Element
	records    []Record
	provenance Provenance
	dirty      bool
}

// Load reads and parses the descriptor at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return Parse(path, data), nil
}

// Parse builds a Document from raw bytes. A document that does not parse as a
// whole, or has more than one top-level element, falls back to salvage mode and
// never returns an error.
func Parse(path string, data []byte) *Document {
	d := &Document{Path: path}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err == nil && len(tree.ChildElements()) == 1 {
		d.tree = tree
		d.games = collectGames(tree.Root(), nil)
		d.records = make([]Record, len(d.games))
		for i, g := range d.games {
			d.records[i] = recordFrom(i, g, Normal)
		}
		return d
	}

	d.provenance = Malformed
	for _, g := range salvage(data) {
		d.records = append(d.records, recordFrom(len(d.records), g, Malformed))
	}
	return d
}

// Records returns a copy of the parsed records in document order.
func (d *Document) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Malformed reports whether the document was recovered by salvage.
func (d *Document) Malformed() bool {
	return d.provenance == Malformed
}

// Provenance returns the provenance shared by every record of the document.
func (d *Document) Provenance() Provenance {
	return d.provenance
}

// Dirty reports whether the document has unsaved edits.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Unhide removes the hidden child of the game at index. Removing an entry
// that carries no hidden child is a no-op.
func (d *Document) Unhide(index int) error {
	if d.Malformed() {
		return fmt.Errorf("cannot edit malformed descriptor: %s", d.Path)
	}
	if index < 0 || index >= len(d.games) {
		return fmt.Errorf("entry index %d out of range (%d entries)", index, len(d.games))
	}

	game := d.games[index]
	for {
		hidden := childByLocalName(game, "hidden")
		if hidden == nil {
			break
		}
		removeWithIndent(game, hidden)
		d.dirty = true
	}
	d.records[index].HiddenRaw = ""
	return nil
}

// Bytes serializes the document tree.
func (d *Document) Bytes() ([]byte, error) {
	if d.tree == nil {
		return nil, fmt.Errorf("cannot serialize malformed descriptor: %s", d.Path)
	}
	return d.tree.WriteToBytes()
}

func collectGames(e *etree.Element, acc []*etree.Element) []*etree.Element {
	for _, child := range e.ChildElements() {
		if strings.EqualFold(child.Tag, "game") {
			acc = append(acc, child)
			continue
		}
		acc = collectGames(child, acc)
	}
	return acc
}

func recordFrom(index int, game *etree.Element, prov Provenance) Record {
	return Record{
		Index:      index,
		NameRaw:    childText(game, "name"),
		PathRaw:    childText(game, "path"),
		HiddenRaw:  childText(game, "hidden"),
		Provenance: prov,
	}
}

// childByLocalName matches on the local part of the tag only; any namespace
// prefix is ignored.
func childByLocalName(e *etree.Element, name string) *etree.Element {
	for _, child := range e.ChildElements() {
		if strings.EqualFold(child.Tag, name) {
			return child
		}
	}
	return nil
}

func childText(e *etree.Element, name string) string {
	child := childByLocalName(e, name)
	if child == nil {
		return ""
	}
	return child.Text()
}

// removeWithIndent drops child and the whitespace run that precedes it so the
// serialized document keeps its layout.
func removeWithIndent(parent, child *etree.Element) {
	idx := child.Index()
	parent.RemoveChildAt(idx)
	if idx > 0 {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && cd.IsWhitespace() {
			parent.RemoveChildAt(idx - 1)
		}
	}
}
