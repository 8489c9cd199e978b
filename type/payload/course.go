package payload

type CreateCoursePayload struct {
	Title       string  `json:"title" form:"title" validate:"required"`
	Uploader    string  `json:"uploader" form:"uploader" validate:"required"`
	Description *string `json:"description" form:"description"`
}

type UpdateCoursePayload struct {
	Title       *string `json:"title" form:"title"`
	Uploader    *string `json:"uploader" form:"uploader"`
	Description *string `json:"description" form:"description"`
}
