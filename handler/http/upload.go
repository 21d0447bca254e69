package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"pdfchat/src/core/chatbot"
	"pdfchat/src/log"
)

// Upload ingests a PDF and binds the resulting namespace to the session,
// overwriting any previous document. On any failure the session is left
// unchanged.
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}
	defer file.Close()

	if header.Filename == "" || !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a valid PDF file"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error(err, "failed to read uploaded file", "filename", header.Filename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing PDF"})
		return
	}

	namespace, err := h.svc.IngestPDF(c.Request.Context(), header.Filename, data)
	if err != nil {
		if errors.Is(err, chatbot.ErrNoExtractableText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No text could be extracted from the PDF"})
			return
		}
		if errors.Is(err, chatbot.ErrUnreadableDocument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the PDF file"})
			return
		}
		log.Error(err, "failed to ingest pdf", "filename", header.Filename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing PDF"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyNamespace, namespace)
	session.Set(sessionKeyFilename, header.Filename)
	if err := session.Save(); err != nil {
		log.Error(err, "failed to save session", "namespace", namespace)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing PDF"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("PDF '%s' uploaded and processed successfully!", header.Filename),
		"filename": header.Filename,
	})
}
