package usecase

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/opepen-graveyard/goapi/domain/opepen"
)

const (
	keyOther     = "Other"
	setKeyPrefix = "Set "
	labelUnknown = "Unknown"

	traitRevealed = "Revealed"
	traitSet      = "Set"
	revealedYes   = "Yes"
)

// IsRevealed holds when the first Revealed attribute is exactly the string "Yes"
func IsRevealed(t opepen.TokenMetadata) bool {
	a, ok := t.Attribute(traitRevealed)
	if !ok {
		return false
	}
	v, isStr := a.Value.(string)
	return isStr && v == revealedYes
}

// Release is the second space separated word of the name's first comma separated part,
// e.g. "4" for "Opepen 4, Edition 12". Empty when there is none.
func Release(name string) string {
	words := strings.Split(strings.Split(name, ",")[0], " ")
	if len(words) < 2 {
		return ""
	}
	return words[1]
}

// GroupTokens partitions tokens into Unrevealed, "Set <release>" and Other groups.
// Groups appear in first-seen order and members keep input order.
func GroupTokens(tokens []opepen.TokenMetadata) []opepen.Group {
	groups := []opepen.Group{}
	index := map[string]int{}

	add := func(key, setName string, t opepen.TokenMetadata) {
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, opepen.Group{Key: key, SetName: setName, Members: []opepen.TokenMetadata{}})
		}
		groups[i].Members = append(groups[i].Members, t)
	}

	for _, t := range tokens {
		if !IsRevealed(t) {
			add(opepen.KeyUnrevealed, opepen.KeyUnrevealed, t)
			continue
		}
		if release := Release(t.Name); release != "" {
			add(setKeyPrefix+release, setLabel(t), t)
			continue
		}
		add(keyOther, keyOther, t)
	}
	return groups
}

// setLabel is taken from the group's first member
func setLabel(t opepen.TokenMetadata) string {
	a, ok := t.Attribute(traitSet)
	if !ok {
		return labelUnknown
	}
	if v := a.ValueString(); v != "" {
		return v
	}
	return labelUnknown
}

// SortGroups orders groups in place: Unrevealed first, Set groups by release number,
// the rest by key.
func SortGroups(groups []opepen.Group) []opepen.Group {
	sort.SliceStable(groups, func(i, j int) bool {
		return compareKeys(groups[i].Key, groups[j].Key) < 0
	})
	return groups
}

func compareKeys(a, b string) int {
	if a == b {
		return 0
	}
	if a == opepen.KeyUnrevealed {
		return -1
	}
	if b == opepen.KeyUnrevealed {
		return 1
	}
	if strings.HasPrefix(a, setKeyPrefix) && strings.HasPrefix(b, setKeyPrefix) {
		na, okA := leadingInt(strings.TrimPrefix(a, setKeyPrefix))
		nb, okB := leadingInt(strings.TrimPrefix(b, setKeyPrefix))
		if okA && okB && na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}

// leadingInt parses the leading decimal digits of s
func leadingInt(s string) (int, bool) {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}
