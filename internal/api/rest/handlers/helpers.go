package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/exemplar/itemsvc/internal/api/rest/dto"
	"github.com/exemplar/itemsvc/internal/api/rest/middleware"
	"github.com/exemplar/itemsvc/internal/pagination"
	"github.com/exemplar/itemsvc/internal/serviceerr"
)

func parsePageRequest(r *http.Request) pagination.PageRequest {
	req := pagination.PageRequest{Page: 0, Size: pagination.DefaultPageSize}

	if p := r.URL.Query().Get("start_page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed >= 0 {
			req.Page = parsed
		}
	}
	if s := r.URL.Query().Get("page_size"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			req.Size = parsed
		}
	}
	return req
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// writeServiceError maps a service error onto the HTTP status table.
// Internal errors are logged with their cause and surface only the
// default message, never the underlying detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	se := serviceerr.From(err)
	status := serviceerr.HTTPStatus(se.Code)

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"code", se.Code,
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
		)
	}

	message := se.Message
	if status >= http.StatusInternalServerError {
		message = serviceerr.DefaultMessage(se.Code)
	}

	writeJSON(w, status, dto.ErrorResponse{
		Error:         string(se.Code),
		Message:       message,
		CorrelationID: middleware.GetRequestID(r.Context()),
	})
}
