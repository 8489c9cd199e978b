package payload

type CreateEventPayload struct {
	Title        string  `json:"title" form:"title" validate:"required"`
	Description  *string `json:"description" form:"description"`
	Date         string  `json:"date" form:"date" validate:"required"`
	Location     string  `json:"location" form:"location" validate:"required"`
	Participants int32   `json:"participants" form:"participants" validate:"required"`
}

type UpdateEventPayload struct {
	Title        *string `json:"title" form:"title"`
	Description  *string `json:"description" form:"description"`
	Date         *string `json:"date" form:"date"`
	Location     *string `json:"location" form:"location"`
	Participants *int32  `json:"participants" form:"participants"`
}
