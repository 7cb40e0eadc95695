package driver

type CreatedEvent struct {
	Driver Driver
}

type UpdatedEvent struct {
	Driver Driver
}

type DeletedEvent struct {
	Driver Driver
}
