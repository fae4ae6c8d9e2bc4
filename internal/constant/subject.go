package constant

const (
	ChangeSubjectPrefix = "CHANGE"

	ChangeSubjectSessions          = ChangeSubjectPrefix + ".sessions"
	ChangeSubjectTournaments       = ChangeSubjectPrefix + ".tournaments"
	ChangeSubjectOwnedGamesCreated = ChangeSubjectPrefix + ".ownedgames.created"
	ChangeSubjectOwnedGamesDeleted = ChangeSubjectPrefix + ".ownedgames.deleted"

	// ChangeSubjectWildcard subscribes to every change subject above.
	ChangeSubjectWildcard = ChangeSubjectPrefix + ".>"

	ContentTypeHeader  = "Content-Type"
	ContentTypeJSON    = "application/json"
	ContentTypeMsgpack = "application/msgpack"
)
