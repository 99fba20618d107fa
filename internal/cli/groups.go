package cli

import (
	"github.com/sahilm/fuzzy"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// groupSource adapts groups to fuzzy.Source, matching on id and title.
type groupSource []*entity.Group

func (s groupSource) String(i int) string {
	return string(s[i].ID) + " " + s[i].Title
}

func (s groupSource) Len() int {
	return len(s)
}

// MatchGroups returns the groups matching pattern, best match first.
// An empty pattern returns groups unchanged.
func MatchGroups(groups []*entity.Group, pattern string) []*entity.Group {
	if pattern == "" {
		return groups
	}
	matches := fuzzy.FindFrom(pattern, groupSource(groups))
	out := make([]*entity.Group, len(matches))
	for i, match := range matches {
		out[i] = groups[match.Index]
	}
	return out
}
