package types

// Tournament carries only what membership accounting needs. Bracket and
// seeding fields published by the tournament service are ignored.
type Tournament struct {
	ID        string   `json:"id" validate:"required"`
	MemberIDs []string `json:"memberIds" validate:"nonblankids"`
}
