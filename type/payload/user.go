package payload

type UpdateUserPayload struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name"`
	Role  *string `json:"role" validate:"omitempty,oneof=ADMIN USER"`
}
