package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the remote service answers with a non-2xx status.
// Body keeps the raw response so callers can inspect it.
type APIError struct {
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	StatusCode int             `json:"-"`
	Status     string          `json:"-"`
	Body       json.RawMessage `json:"-"`
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("integration error code: %s, description: %s, status: %d", e.Code, e.Message, e.StatusCode)
}

func newAPIError(res *http.Response, body []byte) *APIError {
	apiErr := &APIError{}
	// Bodies that are not JSON keep only the raw bytes.
	_ = json.Unmarshal(body, apiErr)

	apiErr.StatusCode = res.StatusCode
	apiErr.Status = res.Status
	apiErr.Body = body
	return apiErr
}

// AsAPIError unwraps err into *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
