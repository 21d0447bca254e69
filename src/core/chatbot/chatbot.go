package chatbot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pdfchat/src/log"
)

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 4

// ErrNoExtractableText is returned when a document yields no chunks,
// typically a scanned PDF without an OCR layer.
var ErrNoExtractableText = errors.New("no text could be extracted")

// ErrUnreadableDocument is returned when a document cannot be parsed at all.
var ErrUnreadableDocument = errors.New("could not read the document")

// Page is the text of one document page.
type Page struct {
	Number int
	Text   string
}

// Chunk is a bounded span of document text, the unit of embedding and retrieval.
type Chunk struct {
	Content string
	Page    int
}

// RetrievedChunk is a chunk returned from similarity search, best-first.
type RetrievedChunk struct {
	Content  string
	Page     int
	Filename string
	Score    float64
}

// Extractor turns raw document bytes into per-page text blocks.
type Extractor interface {
	ExtractPages(data []byte) ([]Page, error)
}

// Embedder converts text into a unit-length fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorStore persists and searches chunk vectors scoped by namespace.
type VectorStore interface {
	StoreChunks(ctx context.Context, namespace, filename string, chunks []Chunk, vectors [][]float32) error
	QueryNamespace(ctx context.Context, namespace string, vector []float32, k int) ([]RetrievedChunk, error)
}

// Composer generates an answer from a system prompt and a user message.
type Composer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Service is the document question-answering workflow.
type Service interface {
	// IngestPDF extracts, splits, embeds and stores a document under a
	// freshly generated namespace, which it returns.
	IngestPDF(ctx context.Context, filename string, data []byte) (string, error)
	// Answer retrieves the most relevant chunks in namespace and composes
	// an answer to the question from them.
	Answer(ctx context.Context, namespace, question string) (string, error)
}

type service struct {
	extractor Extractor
	splitter  *Splitter
	embedder  Embedder
	store     VectorStore
	composer  Composer
	topK      int
}

// NewService creates the chatbot service. All collaborators are required.
func NewService(extractor Extractor, splitter *Splitter, embedder Embedder, store VectorStore, composer Composer) (Service, error) {
	if extractor == nil || splitter == nil || embedder == nil || store == nil || composer == nil {
		return nil, fmt.Errorf("all chatbot service dependencies are required")
	}
	return &service{
		extractor: extractor,
		splitter:  splitter,
		embedder:  embedder,
		store:     store,
		composer:  composer,
		topK:      DefaultTopK,
	}, nil
}

func (s *service) IngestPDF(ctx context.Context, filename string, data []byte) (string, error) {
	pages, err := s.extractor.ExtractPages(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract document text: %w", err)
	}

	chunks, err := s.splitter.Split(pages)
	if err != nil {
		return "", fmt.Errorf("failed to split document text: %w", err)
	}
	if len(chunks) == 0 {
		return "", ErrNoExtractableText
	}

	vectors := make([][]float32, len(chunks))
	for i, chunk := range chunks {
		vector, err := s.embedder.Embed(ctx, chunk.Content)
		if err != nil {
			return "", fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}
		vectors[i] = vector
	}

	// One namespace per upload, never reused. Vectors written before a
	// failing batch are not rolled back; the caller treats the upload as
	// entirely failed and the session keeps its previous namespace.
	namespace := uuid.New().String()
	if err := s.store.StoreChunks(ctx, namespace, filename, chunks, vectors); err != nil {
		return "", fmt.Errorf("failed to store chunks: %w", err)
	}

	log.Info("document ingested", "filename", filename, "namespace", namespace, "chunks", len(chunks))
	return namespace, nil
}

func (s *service) Answer(ctx context.Context, namespace, question string) (string, error) {
	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to embed question: %w", err)
	}

	retrieved, err := s.store.QueryNamespace(ctx, namespace, vector, s.topK)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve context: %w", err)
	}

	// An empty namespace yields an empty context block; the instruction
	// prefix tells the model to answer with the fixed fallback sentence.
	answer, err := s.composer.Complete(ctx, BuildSystemPrompt(retrieved), question)
	if err != nil {
		return "", fmt.Errorf("failed to compose answer: %w", err)
	}

	return answer, nil
}
