package chatbot

import "strings"

// systemPromptPrefix restricts the model to the supplied context. The
// restriction is instruction-only; grounding is not verified.
const systemPromptPrefix = "You are an intelligent assistant helping users understand content from uploaded PDF documents. " +
	"Use only the information provided in the context below to answer questions. " +
	"Be accurate, clear, and concise. " +
	"If the question cannot be answered based on the context, say: " +
	"'I don't have enough information in the document to answer that.'"

// BuildSystemPrompt renders the instruction prefix followed by the retrieved
// chunks, best-first. With no chunks the context block is empty.
func BuildSystemPrompt(retrieved []RetrievedChunk) string {
	var b strings.Builder
	b.WriteString(systemPromptPrefix)
	b.WriteString("\n\nContext:\n")
	for i, chunk := range retrieved {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(chunk.Content)
	}
	return b.String()
}
