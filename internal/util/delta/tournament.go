package delta

import (
	"github.com/samber/lo"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
)

// Tournament returns +1 for every member added and -1 for every member
// removed by the mutation. A created tournament adds all of its members and a
// deleted one removes all of them.
func Tournament(c change.Change[types.Tournament]) map[string]int {
	var before, after []string
	switch c := c.(type) {
	case change.Created[types.Tournament]:
		after = c.Record.MemberIDs
	case change.Updated[types.Tournament]:
		before, after = c.Prev.MemberIDs, c.Next.MemberIDs
	case change.Deleted[types.Tournament]:
		before = c.Record.MemberIDs
	}

	removed, added := lo.Difference(lo.Uniq(before), lo.Uniq(after))

	deltas := make(map[string]int, len(removed)+len(added))
	for _, userID := range added {
		deltas[userID] = 1
	}
	for _, userID := range removed {
		deltas[userID] = -1
	}
	return deltas
}
