package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagmill/internal/models"
)

const previewLength = 100

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [raw-file] [processed-file]",
	Short: "Enrich a batch of posts and unify their tags",
	Long: `Reads a JSON array of posts, enriches each post with line_count, language
and tags via the configured LLM, unifies the tag vocabulary across the whole
batch, and writes the result. Paths default to pipeline.raw_path and
pipeline.processed_path from the config.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		rawPath := appInstance.Config.Pipeline.RawPath
		processedPath := appInstance.Config.Pipeline.ProcessedPath
		if len(args) > 0 {
			rawPath = args[0]
		}
		if len(args) > 1 {
			processedPath = args[1]
		}

		fmt.Println("Starting post processing...")
		processed := appInstance.PostService.ProcessPosts(cmd.Context(), rawPath, processedPath)

		color.Green("Processing complete! Processed %d posts.", len(processed))

		if len(processed) > 0 {
			printSample(processed[0])
		}
		return nil
	},
}

// printSample mirrors the console preview of the first processed post.
func printSample(post models.Post) {
	text := post.Text()
	if runes := []rune(text); len(runes) > previewLength {
		text = string(runes[:previewLength])
	}
	tags, _ := post.Tags()

	fmt.Println("\nSample processed post:")
	fmt.Printf("Text preview: %s...\n", text)
	fmt.Printf("Line count: %v\n", post[models.FieldLineCount])
	fmt.Printf("Language: %v\n", post[models.FieldLanguage])
	fmt.Printf("Tags: %v\n", tags)
}

func init() {
	rootCmd.AddCommand(processCmd)
}
