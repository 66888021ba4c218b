package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"tagmill/internal/services"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [processed-file]",
	Short: "Show statistics for a processed batch",
	Long: `Summarizes a processed posts file: language distribution, tag frequency,
and average line and sentence counts per post. The path defaults to
pipeline.processed_path from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		path := appInstance.Config.Pipeline.ProcessedPath
		if len(args) > 0 {
			path = args[0]
		}

		posts, err := services.LoadPosts(path)
		if err != nil {
			return fmt.Errorf("failed to load processed posts: %w", err)
		}

		stats := appInstance.StatsService.Summarize(posts)

		color.Cyan("Batch statistics for %s", path)
		fmt.Printf("Posts: %d\n", stats.PostCount)
		fmt.Printf("Average lines per post: %.1f\n", stats.AvgLines())
		fmt.Printf("Average sentences per post: %.1f\n", stats.AvgSentences())

		renderCountTable("Language", stats.Languages)
		renderCountTable("Tag", stats.TagCounts)
		return nil
	},
}

// renderCountTable prints a name->count map sorted by count descending,
// then name, so the heaviest rows come first.
func renderCountTable(label string, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{label, "Posts"})
	table.SetBorder(true)
	for _, name := range names {
		table.Append([]string{name, fmt.Sprintf("%d", counts[name])})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
