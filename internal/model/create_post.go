package model

type CreatePostDTO struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}
