package app

import (
	"context"
	"time"
)

type CheckInUseCase interface {
	CheckIn(ctx context.Context, userID int64, userName string, now time.Time) (*CheckInConfirmed, error)
}

type CheckOutUseCase interface {
	CheckOut(ctx context.Context, userID int64, now time.Time) (*CheckOutConfirmed, error)
}

// EventHandler turns one classified event into a Result. A non-nil error
// means a generic failure the transport reports without detail.
type EventHandler interface {
	Handle(ctx context.Context, ev Event) (Result, error)
}
