package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the platform-wide response shape. The certificate endpoints are
// the deliberate exception: they keep the raw shapes their public consumers
// already depend on.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(msg string, data ...any) *Envelope {
	e := &Envelope{
		Status:  StatusSuccess,
		Message: msg,
	}
	if len(data) > 0 {
		e.Data = data[0]
	}
	return e
}

func Fail(msg string) *Envelope {
	return &Envelope{
		Status:  StatusFail,
		Message: msg,
	}
}

func Error(msg string, err error) *Envelope {
	e := &Envelope{
		Status:  StatusError,
		Message: msg,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
