package serializer

// Message is the body of every error answer and of informational replies.
type Message struct {
	Message string `json:"message"`
}

// ListResponse wraps a page of rows and the total before paging.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int64       `json:"count"`
}

type DataResponse struct {
	Data interface{} `json:"data"`
}

// OKResponse acknowledges a mutation; ID is set for creations.
type OKResponse struct {
	OK bool        `json:"ok"`
	ID interface{} `json:"id,omitempty"`
}

type AuthResponse struct {
	Auth    bool   `json:"auth"`
	Message string `json:"message"`
}

const InternalError = "Internal Server Error"

func List(data interface{}, count int64) ListResponse {
	return ListResponse{Data: data, Count: count}
}

func Data(data interface{}) DataResponse {
	return DataResponse{Data: data}
}

func OK() OKResponse {
	return OKResponse{OK: true}
}

func Created(id interface{}) OKResponse {
	return OKResponse{OK: true, ID: id}
}

// ParamErr
func ParamErr(msg string) Message {
	if msg == "" {
		msg = "Faltan campos requeridos"
	}
	return Message{Message: msg}
}

// NotFound
func NotFound(msg string) Message {
	return Message{Message: msg}
}

// ServerErr never carries error details; those go to the log.
func ServerErr() Message {
	return Message{Message: InternalError}
}

// AuthErr
func AuthErr(msg string) AuthResponse {
	if msg == "" {
		msg = "Forbidden"
	}
	return AuthResponse{Auth: false, Message: msg}
}
