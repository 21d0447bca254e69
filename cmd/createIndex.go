package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	weaviateClient "github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"

	"pdfchat/src/log"
	weaviateStore "pdfchat/src/storage/weaviate"
)

// createIndexCmd represents the create-index command. Run once before
// serving traffic; rerunning against an existing class is a no-op.
var createIndexCmd = &cobra.Command{
	Use:   "create-index",
	Short: "Provision the vector index schema",
	Long: `The create-index command waits for the vector store to become ready and
creates the chunk class (384 dimensions, cosine distance) if it does not
already exist.`,
	Run: RunCreateIndex,
}

func init() {
	rootCmd.AddCommand(createIndexCmd)
}

func RunCreateIndex(cmd *cobra.Command, args []string) {
	weaviateKey := viper.GetString("weaviate.api_key")
	if weaviateKey == "" {
		log.Error(fmt.Errorf("missing credentials"), "WEAVIATE_API_KEY must be set")
		os.Exit(1)
	}

	wc := weaviateClient.New(weaviateClient.Config{
		Host:       viper.GetString("weaviate.host"),
		Scheme:     viper.GetString("weaviate.scheme"),
		AuthConfig: auth.ApiKey{Value: weaviateKey},
	})
	store := weaviateStore.NewSDK(wc)

	ctx := context.Background()
	waitForReady(ctx, store)

	created, err := store.EnsureSchema(ctx)
	if err != nil {
		log.Error(err, "Failed to provision schema")
		os.Exit(1)
	}

	if created {
		fmt.Printf("Class '%s' created and ready\n", weaviateStore.ClassName)
	} else {
		fmt.Printf("Class '%s' already exists. You're good to go!\n", weaviateStore.ClassName)
	}
}

// waitForReady polls the store until it reports ready.
func waitForReady(ctx context.Context, store *weaviateStore.SDK) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Waiting for vector store to be ready"),
		progressbar.OptionSpinnerType(14),
	)

	for {
		ready, err := store.Ready(ctx)
		if err != nil {
			log.Debug("readiness check failed", "error", err.Error())
		}
		if ready {
			break
		}
		bar.Add(1)
		time.Sleep(2 * time.Second)
	}
	bar.Finish()
	fmt.Println()
}
