package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdfchat",
	Short: "Question answering over uploaded PDF documents",
	Long: `pdfchat serves a web chat that answers questions about an uploaded PDF.
Documents are split into chunks, embedded and stored in a per-upload
namespace of a Weaviate index; questions are answered by retrieving the
most relevant chunks and passing them to a hosted chat model.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	settingDefaultConfig()
}
