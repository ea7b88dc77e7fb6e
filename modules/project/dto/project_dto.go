package dto

type ProjectRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	URL          string `json:"url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
}
