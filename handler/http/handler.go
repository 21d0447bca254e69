package http

import (
	"github.com/gin-gonic/gin"

	"pdfchat/src/core/chatbot"
)

// Session keys for the active document association.
const (
	sessionKeyNamespace = "namespace"
	sessionKeyFilename  = "filename"
)

type Handler struct {
	svc chatbot.Service
}

func NewHandler(svc chatbot.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

// RegisterRoutes registers all chatbot routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.POST("/upload", h.Upload)
	r.POST("/get", h.Chat)
	r.POST("/clear", h.Clear)
}
