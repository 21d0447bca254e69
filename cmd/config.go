package cmd

import "github.com/spf13/viper"

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for Weaviate
	viper.BindEnv("weaviate.host", "WEAVIATE_HOST")
	viper.BindEnv("weaviate.scheme", "WEAVIATE_SCHEME")
	viper.BindEnv("weaviate.api_key", "WEAVIATE_API_KEY")

	// Map environment variables to Viper keys for OpenRouter
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.base_url", "OPENROUTER_BASE_URL")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")

	// Map environment variables to Viper keys for Ollama and Server
	viper.BindEnv("ollama.url", "OLLAMA_URL")
	viper.BindEnv("embedding.model", "EMBEDDING_MODEL")
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	viper.BindEnv("session.secret", "SESSION_SECRET")

	// Set default values for Weaviate
	viper.SetDefault("weaviate.host", "localhost:8080")
	viper.SetDefault("weaviate.scheme", "http")

	// Set default values for OpenRouter
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.model", "openai/gpt-oss-120b:free")

	// Set default values for Ollama and Server
	viper.SetDefault("ollama.url", "http://localhost:11434/api")
	viper.SetDefault("embedding.model", "all-minilm")
	viper.SetDefault("server.port", "5050")
	viper.SetDefault("server.shutdown_timeout", "5s")

	// Change in production
	viper.SetDefault("session.secret", "super_secret_pdf_chatbot_key_2025")
}
