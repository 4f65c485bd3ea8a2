package dto

// UpdatePostRequest distinguishes an absent content key from an explicit
// empty string. Absent keeps the current text, "" clears it.
type UpdatePostRequest struct {
	Content *string `json:"content"`
}

type LikeResponse struct {
	LikesCount int  `json:"likesCount"`
	Liked      bool `json:"liked"`
}

// DeleteResponse reports success plus any non-fatal cleanup problems
// (a stored image that could not be removed). Warnings never fail the
// request.
type DeleteResponse struct {
	OK       bool     `json:"ok"`
	Warnings []string `json:"warnings,omitempty"`
}
