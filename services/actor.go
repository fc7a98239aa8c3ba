package services

// Actor identifies the authenticated caller of a workflow operation.
// Handlers build it from the token claims; services never reach into the
// request context themselves.
type Actor struct {
	ID      uint
	IsStaff bool
	IsAdmin bool
}

func (a Actor) privileged() bool {
	return a.IsStaff || a.IsAdmin
}
