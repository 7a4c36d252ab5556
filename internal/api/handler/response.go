package handler

// envelope is the canonical response body: every success carries
// success=true plus data (or token/user on the auth routes), every failure
// success=false plus a message. Failures are rendered centrally by the API
// error handler; handlers only ever emit the success shape.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func dataEnvelope(data any) envelope {
	return envelope{Success: true, Data: data}
}

func messageEnvelope(msg string) envelope {
	return envelope{Success: true, Message: msg}
}
