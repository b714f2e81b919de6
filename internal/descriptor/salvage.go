package descriptor

import (
	"regexp"

	"github.com/beevik/etree"
)

// gameBlock matches one balanced game element, shortest first. Prefixed tags
// and attributes are accepted; <gameList> is not a game element.
//
// Free text that contains a literal closing game tag ends the block early.
var gameBlock = regexp.MustCompile(`(?is)<(?:[\w.-]+:)?game(?:\s[^>]*)?>.*?</(?:[\w.-]+:)?game\s*>`)

// salvage parses every game block of a malformed document on its own.
// Blocks that fail to parse are dropped.
func salvage(data []byte) []*etree.Element {
	var games []*etree.Element
	for _, block := range gameBlock.FindAll(data, -1) {
		frag := etree.NewDocument()
		if err := frag.ReadFromBytes(block); err != nil {
			continue
		}
		if root := frag.Root(); root != nil {
			games = append(games, root)
		}
	}
	return games
}
