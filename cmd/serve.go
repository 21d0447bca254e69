package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	weaviateClient "github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"

	httpHdlr "pdfchat/handler/http"
	"pdfchat/src/core/chatbot"
	"pdfchat/src/infrastructure/integrations/ollama"
	"pdfchat/src/infrastructure/integrations/openrouter"
	"pdfchat/src/log"
	"pdfchat/src/pdfutil"
	weaviateStore "pdfchat/src/storage/weaviate"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the PDF chat server",
	Long:  `The serve command starts the HTTP server that handles uploads and chat.`,
	Run:   RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer(cmd *cobra.Command, args []string) {
	// Fail fast on missing credentials
	weaviateKey := viper.GetString("weaviate.api_key")
	openrouterKey := viper.GetString("openrouter.api_key")
	if weaviateKey == "" || openrouterKey == "" {
		log.Error(fmt.Errorf("missing credentials"), "WEAVIATE_API_KEY and OPENROUTER_API_KEY must be set")
		os.Exit(1)
	}

	// Initialize Weaviate client
	wc := weaviateClient.New(weaviateClient.Config{
		Host:       viper.GetString("weaviate.host"),
		Scheme:     viper.GetString("weaviate.scheme"),
		AuthConfig: auth.ApiKey{Value: weaviateKey},
	})
	store := weaviateStore.NewSDK(wc)

	// Initialize the embedding provider, shared across all requests
	oc := ollama.NewClient(viper.GetString("ollama.url"), &http.Client{
		Timeout: 30 * time.Second,
	})
	embedder := ollama.NewEmbeddingProvider(oc, viper.GetString("embedding.model"), weaviateStore.Dimension)

	// Initialize the answer composer
	composer := openrouter.NewComposer(
		openrouterKey,
		viper.GetString("openrouter.base_url"),
		viper.GetString("openrouter.model"),
	)

	svc, err := chatbot.NewService(
		pdfutil.NewExtractor(),
		chatbot.NewSplitter(chatbot.DefaultChunkSize, chatbot.DefaultChunkOverlap),
		embedder,
		store,
		composer,
	)
	if err != nil {
		log.Error(err, "Failed to create chatbot service")
		os.Exit(1)
	}

	requestLogger, err := httpHdlr.NewRequestLogger()
	if err != nil {
		log.Error(err, "Failed to create request logger")
		os.Exit(1)
	}

	// Setup gin router with cookie-backed sessions
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger)
	r.Use(sessions.Sessions("pdfchat_session", cookie.NewStore([]byte(viper.GetString("session.secret")))))
	r.LoadHTMLGlob("templates/*")

	// Register routes
	handler := httpHdlr.NewHandler(svc)
	handler.RegisterRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 5s")
		timeout = 5 * time.Second
	}

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}

	log.Info("Server exited")
}
