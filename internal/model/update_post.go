package model

// UpdatePostDTO is a full replacement of all mutable post fields, not a patch.
type UpdatePostDTO struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}
