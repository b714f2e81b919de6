package entry

import (
	"sort"
	"strings"
)

// Group holds the entries sharing a group key, in document order.
type Group struct {
	Key     string
	Members []Entry
	Primary int // index into Members
}

// PrimaryEntry returns the selected representative of the group.
func (g *Group) PrimaryEntry() Entry {
	return g.Members[g.Primary]
}

// Multi reports whether the group spans more than one entry.
func (g *Group) Multi() bool {
	return len(g.Members) > 1
}

type groupID struct {
	key   string
	index int // set only for degenerate entries
}

// Build groups entries by key in order of first appearance and selects the
// primary of every group. Entries with neither name nor path stay alone.
func Build(entries []Entry) []*Group {
	var groups []*Group
	byID := make(map[groupID]*Group)

	for _, e := range entries {
		id := groupID{key: e.Key, index: -1}
		if strings.TrimSpace(e.Key) == "" {
			id.index = e.Index
		}
		g, ok := byID[id]
		if !ok {
			g = &Group{Key: e.Key}
			byID[id] = g
			groups = append(groups, g)
		}
		g.Members = append(g.Members, e)
	}

	for _, g := range groups {
		g.Primary = SelectPrimary(g.Members)
	}
	return groups
}

// SelectPrimary picks the representative of a non-empty group and returns its
// position in members. Rules, first match wins, ties broken by raw path:
//  1. a playlist (.m3u), preferring a visible one
//  2. volume ordinal 1
//  3. a visible entry
//  4. the first entry
func SelectPrimary(members []Entry) int {
	if len(members) == 0 {
		return -1
	}

	order := make([]int, len(members))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ma, mb := members[order[a]], members[order[b]]
		if ma.PathRaw != mb.PathRaw {
			return ma.PathRaw < mb.PathRaw
		}
		return ma.Index < mb.Index
	})

	first := func(match func(Entry) bool) int {
		for _, i := range order {
			if match(members[i]) {
				return i
			}
		}
		return -1
	}

	if pl := first(isPlaylist); pl >= 0 {
		if visible := first(func(e Entry) bool { return isPlaylist(e) && !e.Hidden }); visible >= 0 {
			return visible
		}
		return pl
	}
	if i := first(func(e Entry) bool {
		n, ok := VolumeIndex(e.PathRaw)
		return ok && n == 1
	}); i >= 0 {
		return i
	}
	if i := first(func(e Entry) bool { return !e.Hidden }); i >= 0 {
		return i
	}
	return order[0]
}

// IsPlaylist reports whether p names an .m3u aggregate.
func IsPlaylist(p string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(p)), ".m3u")
}

func isPlaylist(e Entry) bool {
	return IsPlaylist(e.PathRaw)
}
