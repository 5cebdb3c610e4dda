package serverutils

type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{Code: 200, Message: message, Data: data}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{Code: code, Message: message}
}

func ValidationErrorResponse(details []ErrorDetail) Response[[]ErrorDetail] {
	return Response[[]ErrorDetail]{Code: 400, Message: ErrBadRequest.Error(), Data: details}
}
