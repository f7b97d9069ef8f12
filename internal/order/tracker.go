package order

import (
	"context"
	"errors"
)

var ErrOrderIDRequired = errors.New("order id required")

// TrackingAPI is the backend's point-in-time tracking read.
type TrackingAPI interface {
	TrackOrder(ctx context.Context, session, orderID string) (*TrackingInfo, error)
}

// Tracker resolves tracking reads into the view the progress UI renders.
// Reads are on demand, when a tracking view is opened; nothing is polled.
type Tracker struct {
	API TrackingAPI
}

func NewTracker(api TrackingAPI) *Tracker { return &Tracker{API: api} }

// TrackingView is TrackingInfo plus the derived progress-step fields.
type TrackingView struct {
	TrackingInfo
	Step       int     `json:"step"`
	Progress   float64 `json:"progress"`
	Terminated bool    `json:"terminated"`
}

func (t *Tracker) Track(ctx context.Context, session, orderID string) (*TrackingView, error) {
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}
	info, err := t.API.TrackOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}
	return &TrackingView{
		TrackingInfo: *info,
		Step:         info.Status.Step(),
		Progress:     info.Status.Progress(),
		Terminated:   info.Status.Terminated(),
	}, nil
}
