package constant

const (
	SessionStatusIncomplete = "incomplete"
	SessionStatusComplete   = "complete"

	// OwnedGameStatusOwned is the only owned-game status that counts towards
	// unplayed games. Other statuses (wishlist, previously owned, ...) belong
	// to the collection service and are opaque here.
	OwnedGameStatusOwned = "owned"
)
