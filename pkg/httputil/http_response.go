package httputil

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

const maxBodySize = 64 << 10

// ErrorResponse is the body of every non-2xx answer of the rehab API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSONBody reads at most 64 KiB of r's body into dst. An empty body is an error.
func DecodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	defer r.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return errors.New("reading body error: " + err.Error())
	}
	if len(raw) > maxBodySize {
		return errors.New("body too large")
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return errors.New("empty body")
	}
	return sonic.Unmarshal(raw, dst)
}

// ReadErrorMessage extracts the message of an ErrorResponse body. Bodies that are not
// an ErrorResponse are returned as trimmed text.
func ReadErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil || len(raw) == 0 {
		return "no details"
	}
	var errResp ErrorResponse
	if err := sonic.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(raw))
}
