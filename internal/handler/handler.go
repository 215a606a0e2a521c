package handler

import (
	"encoding/json"
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/logger"
	"github.com/diskusi-dev/diskusi/internal/service"
)

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	auth    service.AuthService
}

func New(thread service.ThreadService, comment service.CommentService, reply service.ReplyService, auth service.AuthService) *Handler {
	return &Handler{thread, comment, reply, auth}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}
