package selector

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

// S runs single-row reads against the table of T.
type S[T any] struct {
	DB bun.IDB
}

func New[T any](db bun.IDB) S[T] {
	return S[T]{
		DB: db,
	}
}

// SelectOne returns statserr.ErrNotFound when fn matches no row.
func (r S[T]) SelectOne(ctx context.Context, fn func(q *bun.SelectQuery) *bun.SelectQuery) (*T, error) {
	var model T
	err := fn(r.DB.NewSelect().Model(&model)).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, statserr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &model, nil
}

func (r S[T]) Exists(ctx context.Context, fn func(q *bun.SelectQuery) *bun.SelectQuery) (bool, error) {
	return fn(r.DB.NewSelect().Model((*T)(nil))).Exists(ctx)
}
