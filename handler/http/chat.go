package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"pdfchat/src/log"
)

// Index serves the chat page and resets the session, so a fresh visit always
// starts without a document.
func (h *Handler) Index(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error(err, "failed to clear session")
	}

	c.HTML(http.StatusOK, "chat.html", gin.H{})
}

// Chat answers a question against the session's active document. Missing
// input and missing document are guidance responses, not errors; processing
// failures become a generic apology.
func (h *Handler) Chat(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("msg"))
	if message == "" {
		c.JSON(http.StatusOK, gin.H{"response": "Please type a message."})
		return
	}

	session := sessions.Default(c)
	namespace, _ := session.Get(sessionKeyNamespace).(string)
	if namespace == "" {
		c.JSON(http.StatusOK, gin.H{"response": "Please upload a PDF first before asking questions."})
		return
	}

	answer, err := h.svc.Answer(c.Request.Context(), namespace, message)
	if err != nil {
		log.Error(err, "failed to answer question", "namespace", namespace)
		c.JSON(http.StatusInternalServerError, gin.H{"response": "Sorry, something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}

// Clear drops the session's document association. Always succeeds.
func (h *Handler) Clear(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error(err, "failed to clear session")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session cleared"})
}
