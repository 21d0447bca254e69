package weaviate

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate/entities/models"

	"pdfchat/src/core/chatbot"
)

func TestParseQueryResults(t *testing.T) {
	data := map[string]models.JSONObject{
		"Get": map[string]interface{}{
			ClassName: []interface{}{
				map[string]interface{}{
					"content":  "best match",
					"page":     float64(3),
					"filename": "manual.pdf",
					"_additional": map[string]interface{}{
						"certainty": 0.91,
					},
				},
				map[string]interface{}{
					"content":  "second match",
					"page":     float64(7),
					"filename": "manual.pdf",
					"_additional": map[string]interface{}{
						"certainty": 0.72,
					},
				},
			},
		},
	}

	got := parseQueryResults(data)
	if len(got) != 2 {
		t.Fatalf("parseQueryResults() returned %d chunks, want 2", len(got))
	}

	want := []chatbot.RetrievedChunk{
		{Content: "best match", Page: 3, Filename: "manual.pdf", Score: 0.91},
		{Content: "second match", Page: 7, Filename: "manual.pdf", Score: 0.72},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseQueryResultsEmpty(t *testing.T) {
	tests := []struct {
		name string
		data map[string]models.JSONObject
	}{
		{name: "nil data", data: nil},
		{name: "missing Get", data: map[string]models.JSONObject{}},
		{
			name: "missing class",
			data: map[string]models.JSONObject{"Get": map[string]interface{}{}},
		},
		{
			name: "empty result list",
			data: map[string]models.JSONObject{
				"Get": map[string]interface{}{ClassName: []interface{}{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseQueryResults(tt.data); len(got) != 0 {
				t.Errorf("parseQueryResults() returned %d chunks, want 0", len(got))
			}
		})
	}
}

func TestParseQueryResultsToleratesMissingFields(t *testing.T) {
	data := map[string]models.JSONObject{
		"Get": map[string]interface{}{
			ClassName: []interface{}{
				map[string]interface{}{"content": "only content"},
			},
		},
	}

	got := parseQueryResults(data)
	if len(got) != 1 {
		t.Fatalf("parseQueryResults() returned %d chunks, want 1", len(got))
	}
	if got[0].Content != "only content" || got[0].Page != 0 || got[0].Score != 0 {
		t.Errorf("chunk = %+v, want zero values for missing fields", got[0])
	}
}

func TestStoreChunksLengthMismatch(t *testing.T) {
	sdk := NewSDK(nil)
	err := sdk.StoreChunks(context.Background(), "ns", "a.pdf",
		[]chatbot.Chunk{{Content: "one"}}, nil)
	if err == nil {
		t.Error("StoreChunks() error = nil, want length mismatch error")
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	var createCalls int
	var classCreated bool
	mux := stdhttp.NewServeMux()
	mux.HandleFunc("/v1/schema", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		switch r.Method {
		case stdhttp.MethodGet:
			resp := map[string]interface{}{"classes": []interface{}{}}
			if classCreated {
				resp["classes"] = []interface{}{
					map[string]interface{}{"class": ClassName},
				}
			}
			json.NewEncoder(w).Encode(resp)
		case stdhttp.MethodPost:
			createCalls++
			classCreated = true
			var class map[string]interface{}
			json.NewDecoder(r.Body).Decode(&class)
			if got := class["class"]; got != ClassName {
				t.Errorf("created class %v, want %q", got, ClassName)
			}
			json.NewEncoder(w).Encode(class)
		default:
			w.WriteHeader(stdhttp.StatusMethodNotAllowed)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := weaviate.New(weaviate.Config{
		Host:   strings.TrimPrefix(srv.URL, "http://"),
		Scheme: "http",
	})
	sdk := NewSDK(client)

	created, err := sdk.EnsureSchema(context.Background())
	if err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	if !created {
		t.Error("first EnsureSchema() created = false, want true")
	}
	if createCalls != 1 {
		t.Fatalf("create requests = %d, want 1", createCalls)
	}

	created, err = sdk.EnsureSchema(context.Background())
	if err != nil {
		t.Fatalf("second EnsureSchema() error = %v", err)
	}
	if created {
		t.Error("second EnsureSchema() created = true, want false")
	}
	if createCalls != 1 {
		t.Errorf("create requests after second call = %d, want 1", createCalls)
	}
}
