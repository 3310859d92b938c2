package model

// Volunteer represents a transcriber registered on Blossom.
type Volunteer struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
