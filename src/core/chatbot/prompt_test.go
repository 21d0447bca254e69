package chatbot_test

import (
	"strings"
	"testing"

	"pdfchat/src/core/chatbot"
)

func TestBuildSystemPrompt(t *testing.T) {
	retrieved := []chatbot.RetrievedChunk{
		{Content: "First chunk.", Page: 1},
		{Content: "Second chunk.", Page: 2},
	}

	prompt := chatbot.BuildSystemPrompt(retrieved)

	if !strings.Contains(prompt, "Use only the information provided in the context") {
		t.Error("prompt missing context-only instruction")
	}
	if !strings.Contains(prompt, "I don't have enough information in the document to answer that.") {
		t.Error("prompt missing fallback sentence")
	}
	firstIdx := strings.Index(prompt, "First chunk.")
	secondIdx := strings.Index(prompt, "Second chunk.")
	if firstIdx < 0 || secondIdx < 0 {
		t.Fatal("prompt missing retrieved chunks")
	}
	if firstIdx > secondIdx {
		t.Error("retrieved chunks out of order in prompt")
	}
}

func TestBuildSystemPromptEmptyContext(t *testing.T) {
	prompt := chatbot.BuildSystemPrompt(nil)

	if !strings.Contains(prompt, "Context:") {
		t.Error("prompt missing context block")
	}
	if !strings.HasPrefix(prompt, "You are an intelligent assistant") {
		t.Error("prompt missing instruction prefix")
	}
}
