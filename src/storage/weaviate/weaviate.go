package weaviate

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"pdfchat/src/core/chatbot"
)

const (
	// ClassName is the single collection holding every document's chunks.
	// Isolation between documents comes from the namespace property.
	ClassName = "PdfChatbot"

	// Dimension matches the all-minilm embedding model.
	Dimension = 384
)

// SDK encapsulates all Weaviate operations
type SDK struct {
	client *weaviate.Client
}

// NewSDK creates a new instance of SDK
func NewSDK(client *weaviate.Client) *SDK {
	return &SDK{
		client: client,
	}
}

// Ready reports whether the store is accepting traffic.
func (w *SDK) Ready(ctx context.Context) (bool, error) {
	ready, err := w.client.Misc().ReadyChecker().Do(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check readiness: %v", err)
	}
	return ready, nil
}

// EnsureSchema creates the chunk class if it does not exist. Creating an
// already-existing class is a no-op that reports success.
func (w *SDK) EnsureSchema(ctx context.Context) (created bool, err error) {
	exists, err := w.classExists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check if class exists: %v", err)
	}
	if exists {
		return false, nil
	}

	class := &models.Class{
		Class: ClassName,
		Properties: []*models.Property{
			{
				Name:        "content",
				DataType:    []string{"text"},
				Description: "The chunk text",
			},
			{
				Name:        "page",
				DataType:    []string{"int"},
				Description: "Source page number",
			},
			{
				Name:        "filename",
				DataType:    []string{"text"},
				Description: "Source document filename",
			},
			{
				Name:        "namespace",
				DataType:    []string{"text"},
				Description: "Upload the chunk belongs to",
			},
		},
		Vectorizer: "none",
		VectorIndexConfig: map[string]interface{}{
			"distance": "cosine",
		},
	}

	err = w.client.Schema().ClassCreator().WithClass(class).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to create Weaviate class: %v", err)
	}

	return true, nil
}

// classExists checks if the chunk class exists in the schema
func (w *SDK) classExists(ctx context.Context) (bool, error) {
	schema, err := w.client.Schema().Getter().Do(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get schema: %v", err)
	}

	for _, class := range schema.Classes {
		if class.Class == ClassName {
			return true, nil
		}
	}

	return false, nil
}

// StoreChunks batch-inserts the chunks with their vectors, all tagged with
// namespace. Any per-object failure fails the whole upload.
func (w *SDK) StoreChunks(ctx context.Context, namespace, filename string, chunks []chatbot.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch: %d != %d", len(chunks), len(vectors))
	}

	objs := make([]*models.Object, len(chunks))
	for i, chunk := range chunks {
		objs[i] = &models.Object{
			Class: ClassName,
			Properties: map[string]interface{}{
				"content":   chunk.Content,
				"page":      chunk.Page,
				"filename":  filename,
				"namespace": namespace,
			},
			Vector: vectors[i],
		}
	}

	batcher := w.client.Batch().ObjectsBatcher()
	resp, err := batcher.WithObjects(objs...).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to batch add vectors: %v", err)
	}
	if len(resp) == 0 {
		return fmt.Errorf("batch operation returned no results")
	}
	for _, obj := range resp {
		if obj.Result != nil && obj.Result.Errors != nil && len(obj.Result.Errors.Error) > 0 {
			return fmt.Errorf("failed to store chunk: %s", obj.Result.Errors.Error[0].Message)
		}
	}

	return nil
}

// QueryNamespace returns the k chunks in namespace nearest to vector,
// best-first. An empty namespace yields an empty result.
func (w *SDK) QueryNamespace(ctx context.Context, namespace string, vector []float32, k int) ([]chatbot.RetrievedChunk, error) {
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "page"},
		{Name: "filename"},
		{Name: "_additional { certainty }"},
	}

	nearVector := w.client.GraphQL().NearVectorArgBuilder().
		WithVector(vector)

	where := filters.Where().
		WithPath([]string{"namespace"}).
		WithOperator(filters.Equal).
		WithValueText(namespace)

	result, err := w.client.GraphQL().Get().
		WithClassName(ClassName).
		WithFields(fields...).
		WithNearVector(nearVector).
		WithWhere(where).
		WithLimit(k).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query vectors: %v", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("failed to query vectors: %s", result.Errors[0].Message)
	}

	return parseQueryResults(result.Data), nil
}

// DeleteNamespace removes every chunk in namespace. The service never calls
// this; it exists for out-of-band cleanup of orphaned namespaces.
func (w *SDK) DeleteNamespace(ctx context.Context, namespace string) error {
	where := filters.Where().
		WithPath([]string{"namespace"}).
		WithOperator(filters.Equal).
		WithValueText(namespace)

	_, err := w.client.Batch().ObjectsBatchDeleter().
		WithClassName(ClassName).
		WithWhere(where).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete namespace: %v", err)
	}

	return nil
}

// parseQueryResults unpacks a GraphQL Get response into retrieved chunks,
// preserving result order.
func parseQueryResults(data map[string]models.JSONObject) []chatbot.RetrievedChunk {
	retrieved := []chatbot.RetrievedChunk{}

	get, ok := data["Get"].(map[string]interface{})
	if !ok {
		return retrieved
	}
	objects, ok := get[ClassName].([]interface{})
	if !ok {
		return retrieved
	}

	for _, obj := range objects {
		objMap, ok := obj.(map[string]interface{})
		if !ok {
			continue
		}

		chunk := chatbot.RetrievedChunk{}
		if content, ok := objMap["content"].(string); ok {
			chunk.Content = content
		}
		if page, ok := objMap["page"].(float64); ok {
			chunk.Page = int(page)
		}
		if filename, ok := objMap["filename"].(string); ok {
			chunk.Filename = filename
		}
		if additional, ok := objMap["_additional"].(map[string]interface{}); ok {
			if certainty, ok := additional["certainty"].(float64); ok {
				chunk.Score = certainty
			}
		}

		retrieved = append(retrieved, chunk)
	}

	return retrieved
}
