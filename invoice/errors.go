package invoice

import (
	"errors"
	"fmt"
)

var (
	ErrRenderFailed = errors.New("render tickets failed")
	ErrNoTickets    = errors.New("order has no tickets")
	ErrMissingSeat  = errors.New("missing seat detail for ticket")
)

// RenderError lỗi làm hỏng cả file PDF, không trả về file nào
type RenderError struct {
	OrderID  string
	TicketID string
	Err      error
}

func (e *RenderError) Error() string {
	msg := "render tickets for order " + e.OrderID
	if e.TicketID != "" {
		msg += fmt.Sprintf(" (ticket %s)", e.TicketID)
	}
	return msg + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrRenderFailed, e.Err}
}
