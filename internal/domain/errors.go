package domain

import "errors"

var (
	// ErrUnknownLocation is returned when a start or source island is not in the graph.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrInvalidGraph is returned for negative or non-finite weights, self-loops
	// and malformed island data.
	ErrInvalidGraph = errors.New("invalid graph")

	ErrInvalidQuantity = errors.New("invalid quantity")
)
