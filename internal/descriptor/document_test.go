package descriptor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `<?xml version="1.0"?>
<gameList>
	<game>
		<path>./Quest (Disk 1).adf</path>
		<name>Quest</name>
	</game>
	<game>
		<path>./Quest (Disk 2).adf</path>
		<name>Quest</name>
		<hidden>true</hidden>
	</game>
	<game>
		<path>./Lone.zip</path>
	</game>
</gameList>
`

func TestParse_WellFormed(t *testing.T) {
	doc := Parse("gamelist.xml", []byte(wellFormed))

	require.False(t, doc.Malformed())
	recs := doc.Records()
	require.Len(t, recs, 3)

	assert.Equal(t, Record{Index: 0, NameRaw: "Quest", PathRaw: "./Quest (Disk 1).adf", Provenance: Normal}, recs[0])
	assert.Equal(t, "true", recs[1].HiddenRaw)
	assert.Equal(t, "", recs[2].NameRaw, "missing child reads as empty")
	assert.Equal(t, "", recs[2].HiddenRaw)
}

func TestParse_NamespacePrefixedChildren(t *testing.T) {
	src := `<gameList xmlns:es="urn:es">
  <es:game>
    <es:name>Prefixed</es:name>
    <es:path>./p.chd</es:path>
    <es:hidden>yes</es:hidden>
  </es:game>
</gameList>`

	doc := Parse("gamelist.xml", []byte(src))
	require.False(t, doc.Malformed())
	recs := doc.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "Prefixed", recs[0].NameRaw)
	assert.Equal(t, "./p.chd", recs[0].PathRaw)
	assert.Equal(t, "yes", recs[0].HiddenRaw)
}

func TestParse_SalvagesMalformedDocument(t *testing.T) {
	// Unclosed <desc> in the second game breaks the whole document and that
	// block; the other two survive.
	src := `<gameList>
	<game><name>First</name><path>./1.zip</path></game>
	<game><name>Broken</name><desc>oops</game>
	<GAME id="3"><name>Third</name><path>./3.zip</path><hidden>1</hidden></GAME>
</gameList`

	doc := Parse("gamelist.xml", []byte(src))
	require.True(t, doc.Malformed())

	recs := doc.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "First", recs[0].NameRaw)
	assert.Equal(t, "Third", recs[1].NameRaw)
	assert.Equal(t, "1", recs[1].HiddenRaw)
	for _, r := range recs {
		assert.Equal(t, Malformed, r.Provenance)
	}
	assert.Equal(t, "Malformed", Malformed.String())
}

func TestParse_SecondTopLevelElementIsMalformed(t *testing.T) {
	src := `<gameList>
	<game><name>Inside</name><path>./in.zip</path></game>
</gameList>
<game><name>Appended</name><path>./out.zip</path><hidden>true</hidden></game>`

	doc := Parse("gamelist.xml", []byte(src))
	require.True(t, doc.Malformed())

	recs := doc.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "Inside", recs[0].NameRaw)
	assert.Equal(t, "Appended", recs[1].NameRaw)
	assert.Equal(t, "true", recs[1].HiddenRaw)
}

func TestParse_GarbageYieldsNoRecords(t *testing.T) {
	doc := Parse("gamelist.xml", []byte("not xml at all"))
	assert.True(t, doc.Malformed())
	assert.Empty(t, doc.Records())

	doc = Parse("gamelist.xml", nil)
	assert.True(t, doc.Malformed())
	assert.Empty(t, doc.Records())
}

func TestUnhide_RoundTrip(t *testing.T) {
	doc := Parse("gamelist.xml", []byte(wellFormed))
	require.NoError(t, doc.Unhide(1))
	assert.True(t, doc.Dirty())
	assert.Equal(t, "", doc.Records()[1].HiddenRaw)

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hidden")
	assert.Contains(t, string(out), "<name>Quest</name>\n\t</game>")

	again := Parse("gamelist.xml", out)
	require.False(t, again.Malformed())
	recs := again.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, "", recs[1].HiddenRaw)
	assert.Equal(t, "./Quest (Disk 2).adf", recs[1].PathRaw)
}

func TestUnhide_Errors(t *testing.T) {
	doc := Parse("gamelist.xml", []byte(wellFormed))
	assert.Error(t, doc.Unhide(7))
	assert.Error(t, doc.Unhide(-1))

	require.NoError(t, doc.Unhide(0), "entry without hidden child")
	assert.False(t, doc.Dirty())

	bad := Parse("gamelist.xml", []byte("<gameList><game><name>x</name></game>"))
	require.True(t, bad.Malformed())
	assert.Error(t, bad.Unhide(0))
	_, err := bad.Bytes()
	assert.Error(t, err)
}

func TestBackupAndWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gamelist.xml")
	require.NoError(t, os.WriteFile(path, []byte(wellFormed), 0o600))

	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	assert.Equal(t, path+".20240309_070501.bak", BackupName(path, at))

	bak, err := Backup(path, at)
	require.NoError(t, err)
	got, err := os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, wellFormed, string(got))

	_, err = Backup(path, at)
	assert.Error(t, err, "existing backup must not be overwritten")

	doc, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, doc.Unhide(1))
	require.NoError(t, doc.Write())
	assert.False(t, doc.Dirty())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", reloaded.Records()[1].HiddenRaw)

	// the backup still holds the pre-edit bytes
	got, err = os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, wellFormed, string(got))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}
