package drivergroup

type CreatedEvent struct {
	Group DriverGroup
}

type UpdatedEvent struct {
	Group DriverGroup
}

type DeletedEvent struct {
	Group DriverGroup
}
