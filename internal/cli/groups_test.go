package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/lightbox/internal/domain/entity"
)

func TestMatchGroups(t *testing.T) {
	groups := []*entity.Group{
		{ID: "removal", Title: "Tree Removal"},
		{ID: "stump-grinding", Title: "Stump Grinding"},
		{ID: "pruning", Title: "Pruning"},
	}

	tests := []struct {
		name    string
		pattern string
		want    []entity.GroupID
	}{
		{"empty pattern keeps all", "", []entity.GroupID{"removal", "stump-grinding", "pruning"}},
		{"prefix of id", "stump", []entity.GroupID{"stump-grinding"}},
		{"title words", "TreeRem", []entity.GroupID{"removal"}},
		{"no match", "zzz", []entity.GroupID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchGroups(groups, tt.pattern)
			ids := make([]entity.GroupID, len(got))
			for i, g := range got {
				ids[i] = g.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
