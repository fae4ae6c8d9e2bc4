package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/model"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/repo/selector"
)

type Collection struct {
	sel selector.S[model.Collection]
}

func NewCollection(db *bun.DB) *Collection {
	return &Collection{sel: selector.New[model.Collection](db)}
}

// IsInDefaultCollection reports whether gameID is listed in the user's default
// collection. A user without a default collection has no game in it.
func (r *Collection) IsInDefaultCollection(ctx context.Context, userID, gameID string) (bool, error) {
	exists, err := r.sel.Exists(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("user_id = ?", userID).
			Where("is_default").
			Where("? = ANY(game_ids)", gameID)
	})
	if err != nil {
		return false, statserr.Transient(err, "check default collection")
	}
	return exists, nil
}
