package kit

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the JSON error envelope. err, when not nil, supplies
// the code field via Outcome.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, err error, details any) {
	resp := ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: chimw.GetReqID(r.Context()),
	}
	if err != nil {
		resp.Code = Outcome(err)
	}
	WriteJSON(w, status, resp)
}
