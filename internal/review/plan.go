package review

import (
	"sort"

	"github.com/mydehq/gamedesc/internal/entry"
)

// BypassDisk2 tags hidden members of a multi-volume set that are not its primary.
const BypassDisk2 = "Disk2+"

// Plan is the review work for one document.
type Plan struct {
	Found         int           // hidden entries in the document
	Eligible      []entry.Entry // prompted, in document order
	Bypassed      []entry.Entry // never prompted, never mutated
	BypassReasons map[string]int
	Volumes       map[int]int // group size keyed by record index of eligible entries
}

// PlanGroups selects the entries to prompt for. Only a group's primary can be
// eligible; every other hidden member of a multi-volume group is bypassed.
func PlanGroups(groups []*entry.Group) Plan {
	p := Plan{
		BypassReasons: map[string]int{},
		Volumes:       map[int]int{},
	}

	for _, g := range groups {
		for i, m := range g.Members {
			if !m.Hidden {
				continue
			}
			p.Found++
			if i == g.Primary {
				p.Eligible = append(p.Eligible, m)
				p.Volumes[m.Index] = len(g.Members)
				continue
			}
			p.Bypassed = append(p.Bypassed, m)
			p.BypassReasons[BypassDisk2]++
		}
	}

	sort.SliceStable(p.Eligible, func(a, b int) bool {
		return p.Eligible[a].Index < p.Eligible[b].Index
	})
	return p
}
