package models

// ResponseError is a single error entry in an API response envelope. Calling
// code displays the first error's description without interpreting codes.
type ResponseError struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
}

// Response is the uniform API envelope: every operation answers with
// isSuccessful plus an errors list, and successful operations attach their
// payload under data.
type Response struct {
	IsSuccessful bool            `json:"isSuccessful"`
	Errors       []ResponseError `json:"errors"`
	Data         any             `json:"data,omitempty"`
}

// OK builds a successful response envelope around data.
func OK(data any) Response {
	return Response{IsSuccessful: true, Errors: []ResponseError{}, Data: data}
}

// Fail builds a failed response envelope with a single error description.
func Fail(description string) Response {
	return Response{
		IsSuccessful: false,
		Errors:       []ResponseError{{Description: description}},
	}
}
