package domain

// Directed travel leg between two islands, weighted by travel time in hours.
type Edge struct {
	From  string
	To    string
	Hours float64
}

// Destination and travel time of an outgoing edge.
type Neighbor struct {
	To    string
	Hours float64
}
