package contract

import "context"

// Router classifies a guest message. It never fails.
type Router interface {
	Classify(ctx context.Context, message string) Role
}

type Specialist interface {
	Run(ctx context.Context, req SpecialistRequest) (SpecialistResponse, error)
}

type Registry interface {
	Router() Router
	Specialist(role Role) Specialist
}
