package repository

// DeleteOptions is the body of the delete endpoint.
type DeleteOptions struct {
	IDs []int64 `json:"ids"`
}
