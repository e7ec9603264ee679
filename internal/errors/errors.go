package errors

// ErrorWithStatusCode is the error returned for any request the backend
// answered with a non-ok status. Error() is exactly the server-supplied
// message (or the synthesized fallback), so callers that only care about
// the text keep working; the status code rides along for callers that
// want to branch on it.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}
