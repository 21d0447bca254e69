package chatbot_test

import (
	"strings"
	"testing"

	"pdfchat/src/core/chatbot"
)

func TestSplitEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		pages []chatbot.Page
	}{
		{name: "nil pages", pages: nil},
		{name: "empty page", pages: []chatbot.Page{{Number: 1, Text: ""}}},
		{name: "whitespace page", pages: []chatbot.Page{{Number: 1, Text: " \n\t\n "}}},
	}

	splitter := chatbot.NewSplitter(0, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := splitter.Split(tt.pages)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if len(chunks) != 0 {
				t.Errorf("Split() returned %d chunks, want 0", len(chunks))
			}
		})
	}
}

func TestSplitChunkSize(t *testing.T) {
	// ~2600 characters of sentences, forcing several chunks.
	sentence := "The quick brown fox jumps over the lazy dog near the river bank. "
	text := strings.Repeat(sentence, 40)

	splitter := chatbot.NewSplitter(500, 50)
	chunks, err := splitter.Split([]chatbot.Page{{Number: 1, Text: text}})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("Split() returned %d chunks, want several", len(chunks))
	}
	for i, chunk := range chunks {
		if got := len([]rune(chunk.Content)); got > 500 {
			t.Errorf("chunk %d length = %d, want <= 500", i, got)
		}
		if chunk.Page != 1 {
			t.Errorf("chunk %d page = %d, want 1", i, chunk.Page)
		}
	}
}

func TestSplitKeepsPageNumbers(t *testing.T) {
	pages := []chatbot.Page{
		{Number: 1, Text: "First page content about one topic."},
		{Number: 2, Text: ""},
		{Number: 3, Text: "Third page content about another topic."},
	}

	chunks, err := chatbot.NewSplitter(0, 0).Split(pages)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	got := make(map[int]bool)
	for _, chunk := range chunks {
		got[chunk.Page] = true
	}
	if !got[1] || !got[3] {
		t.Errorf("chunk pages = %v, want pages 1 and 3 present", got)
	}
	if got[2] {
		t.Error("empty page 2 produced chunks")
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	first := strings.TrimSpace(strings.Repeat("alpha ", 40))
	second := strings.TrimSpace(strings.Repeat("beta ", 40))
	text := first + "\n\n" + second

	chunks, err := chatbot.NewSplitter(300, 50).Split([]chatbot.Page{{Number: 1, Text: text}})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("Split() returned %d chunks, want at least 2", len(chunks))
	}
	if strings.Contains(chunks[0].Content, "beta") {
		t.Error("first chunk crossed the paragraph boundary")
	}
}
