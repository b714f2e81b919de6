package entry

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	discPattern = regexp.MustCompile(`(?i)(?:^|[^a-z])dis[ck]\s*[-_#.]?\s*(\d+)(?:\s*of\s*\d+)?`)
	cdPattern   = regexp.MustCompile(`(?i)(?:^|[^a-z])cd\s*[-_#.]?\s*(\d+)`)
	sidePattern = regexp.MustCompile(`(?i)(?:^|[^a-z])side\s*[-_]?\s*([a-z])(?:[^a-z]|$)`)
)

// VolumeIndex infers the 1-based volume ordinal from the file name of p.
// Disc/disk numbers win over CD numbers, which win over side letters.
// ok is false when no convention matches.
func VolumeIndex(p string) (n int, ok bool) {
	name := fileName(p)
	if name == "" {
		return 0, false
	}

	for _, re := range []*regexp.Regexp{discPattern, cdPattern} {
		if m := re.FindStringSubmatch(name); m != nil {
			v, err := strconv.Atoi(m[1])
			if err != nil || v < 1 {
				continue
			}
			return v, true
		}
	}

	if m := sidePattern.FindStringSubmatch(name); m != nil {
		// (?i) also folds a few non-ASCII runes into [a-z]
		if letter := strings.ToUpper(m[1]); len(letter) == 1 && letter[0] >= 'A' && letter[0] <= 'Z' {
			return int(letter[0]-'A') + 1, true
		}
	}
	return 0, false
}
