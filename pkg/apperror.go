package pkg

// AppError is the error shape crossing the HTTP boundary. Handlers map
// domain errors into one of these and serialize the HTTPError view, so
// internal error chains never leak to clients.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Err        error             `json:"-"`
	HTTPStatus int               `json:"-"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError carries per-field messages for 400 responses.
func NewValidationError(code, message string, fields map[string]string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Fields: fields, HTTPStatus: httpStatus}
}

// HTTPError is the response body for failed requests.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
