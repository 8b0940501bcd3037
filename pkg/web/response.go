// Package web defines common components for a web application.
package web

// Result is the uniform envelope returned by every data access operation
// and written as the body of every API response.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	// Cause keeps the original error so that delivery layers can map it to a status code.
	Cause error `json:"-"`
}

// Response is the untyped Result used by middlewares and error-only replies.
type Response = Result[any]

// OK wraps data into a successful Result.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps err into a failed Result.
func Fail[T any](err error) Result[T] {
	return Result[T]{Error: err.Error(), Cause: err}
}

// FailWith wraps err into a failed Result that still carries data.
//
// It is used when the caller may retry the operation with the same data.
func FailWith[T any](data T, err error) Result[T] {
	return Result[T]{Data: data, Error: err.Error(), Cause: err}
}

// Error wraps a given err into json frinedly response.
func Error(err error) Response {
	return Fail[any](err)
}
