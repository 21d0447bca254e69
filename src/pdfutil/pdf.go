package pdfutil

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"pdfchat/src/core/chatbot"
	"pdfchat/src/log"
)

// Extractor reads per-page plain text out of PDF bytes.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPages returns the text of every page that has any. A page whose
// extraction fails is skipped; an unreadable document is an error.
func (e *Extractor) ExtractPages(data []byte) (pages []chatbot.Page, err error) {
	// The pdf parser panics on some malformed files instead of returning
	// an error; treat that as an unreadable document.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: parser panic: %v", chatbot.ErrUnreadableDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chatbot.ErrUnreadableDocument, err)
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Debug("skipping unreadable page", "page", i, "error", err.Error())
			continue
		}
		pages = append(pages, chatbot.Page{Number: i, Text: text})
	}

	return pages, nil
}
