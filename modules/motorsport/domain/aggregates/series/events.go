package series

type CreatedEvent struct {
	Series Series
}

type UpdatedEvent struct {
	Series Series
}

type DeletedEvent struct {
	Series Series
}
