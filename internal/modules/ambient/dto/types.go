package dto

type CategoryOutput struct {
	Name   string
	Tracks []string
}

type PlayInput struct {
	Category string
	// Track is a file name or a zero-based index.
	Track string
}

type StateOutput struct {
	Status   string
	Category string
	Track    string
	Volume   float64
}
