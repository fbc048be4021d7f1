package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrReferenceNotFound   = errors.New("referenced record does not exist")
	ErrDuplicateRecord     = errors.New("record already exists")
	ErrSeatAlreadyTaken    = errors.New("seat(s) are already taken")
	ErrTicketOutOfRange    = errors.New("ticket row or seat is outside of the cinema hall")
	ErrOrderWithoutTickets = errors.New("order must contain at least one ticket")
)

// InvalidFilterError reports a query parameter that could not be parsed into
// the type its filter requires.
type InvalidFilterError struct {
	Param string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid %s filter: %q is not a valid integer", e.Param, e.Value)
}
