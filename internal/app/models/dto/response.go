package dto

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Result  bool        `json:"result"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Result:  true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds a failure envelope. Data defaults to an empty list
// so clients always see a non-null data field on errors.
func NewErrorResponse(message string, data interface{}) Response {
	if data == nil {
		data = []interface{}{}
	}
	return Response{
		Result:  false,
		Message: message,
		Data:    data,
	}
}
