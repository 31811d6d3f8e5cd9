package dto

// IDResponse carries the generated id of a newly registered entity.
type IDResponse struct {
	ID uint64 `json:"id"`
}
