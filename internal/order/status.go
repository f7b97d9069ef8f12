package order

// Status is the closed order lifecycle enumeration. The backend owns all
// transitions; this client only projects them.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCooking   Status = "COOKING"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Step returns the index driving the tracking progress bar:
// PENDING 0, CONFIRMED 1, COOKING 2, DELIVERED 3. CANCELLED (and anything
// unknown) is -1 and excluded from the forward bar.
func (s Status) Step() int {
	switch s {
	case StatusPending:
		return 0
	case StatusConfirmed:
		return 1
	case StatusCooking:
		return 2
	case StatusDelivered:
		return 3
	default:
		return -1
	}
}

// Progress is the completed fraction of the forward bar, clamped so a
// cancelled order never renders as partially delivered.
func (s Status) Progress() float64 {
	step := s.Step()
	if step < 0 {
		return 0
	}
	return float64(step) / 3
}

// Terminated reports whether the order left the forward lifecycle. The UI
// renders a distinct terminated treatment instead of a progress bar.
func (s Status) Terminated() bool { return s == StatusCancelled }

// CanCancel reports whether the customer may still request cancellation.
// The backend rejects late cancellations too; a well-behaved client simply
// never asks.
func (s Status) CanCancel() bool { return s == StatusPending }

// Next lists the sensible forward targets for the provider view, one step at
// a time. Advisory only: the backend validates whatever is requested.
func (s Status) Next() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusConfirmed}
	case StatusConfirmed:
		return []Status{StatusCooking}
	case StatusCooking:
		return []Status{StatusDelivered}
	default:
		return nil
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCooking, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
