package model

import "github.com/uptrace/bun"

// Collection is a named list of games a user keeps. Each user has at most one
// default collection; an owned game only counts once it is part of it.
type Collection struct {
	bun.BaseModel `bun:"collections,alias:col"`

	CollectionID string   `bun:",pk" json:"collectionId"`
	UserID       string   `json:"userId"`
	IsDefault    bool     `json:"isDefault"`
	GameIDs      []string `bun:",array" json:"gameIds"`
}
