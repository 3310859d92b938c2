package model

// Transcription represents a finished transcription comment on Blossom.
// Submission is a reference URL back to the transcribed submission.
type Transcription struct {
	ID         int64  `json:"id"`
	URL        string `json:"url"`
	Submission string `json:"submission"`
}
