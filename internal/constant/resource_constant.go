package constant

const (
	ResourceNote     = "note"
	ResourceReminder = "reminder"
	ResourceUser     = "user"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const DefaultEventTopicName = "keepnote.resource.events"
