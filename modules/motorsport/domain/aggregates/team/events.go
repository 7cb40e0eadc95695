package team

type CreatedEvent struct {
	Team Team
}

type UpdatedEvent struct {
	Team Team
}

type DeletedEvent struct {
	Team Team
}
