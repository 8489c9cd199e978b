package payload

type CreateCertificatePayload struct {
	Name    string `json:"name" validate:"required"`
	EventID int32  `json:"eventId" validate:"required"`
}

type CreateBatchCertificatesPayload struct {
	Names   []string `json:"names" validate:"required,min=1,dive,required"`
	EventID int32    `json:"eventId" validate:"required"`
}

// UpdateCertificatePayload is a partial update. Revoked passes straight through
// to the store, bypassing the already-revoked guard of the revoke endpoint.
type UpdateCertificatePayload struct {
	Name    *string `json:"name"`
	EventID *int32  `json:"eventId"`
	Revoked *bool   `json:"revoked"`
}

type SendCertificatePayload struct {
	Email string `json:"email" validate:"required,email"`
}
