package dto

// PhotoMetadata is the multipart form metadata accompanying the file part.
type PhotoMetadata struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	TakenAt     string `form:"takenAt"`
}
