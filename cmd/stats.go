package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tly/tly"
)

var (
	statsStartDate   string
	statsEndDate     string
	statsConcurrency int
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <short-url>...",
	Short: "Fetch click statistics for one or more short links",
	Long: `Fetch click statistics for one or more short links. Each link is one
API exchange; multiple links are fetched concurrently up to --concurrency.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsStartDate, "start-date", "", "start of the date range")
	statsCmd.Flags().StringVar(&statsEndDate, "end-date", "", "end of the date range")
	statsCmd.Flags().IntVar(&statsConcurrency, "concurrency", 4, "maximum in-flight requests")
}

func runStats(cmd *cobra.Command, args []string) error {
	defer client.Close()

	if statsConcurrency < 1 {
		return usageError{fmt.Errorf("invalid --concurrency %d", statsConcurrency)}
	}

	opts := &tly.StatsOptions{
		StartDate: tly.TimestampString(statsStartDate),
		EndDate:   tly.TimestampString(statsEndDate),
	}

	// One slot per link keeps output in argument order regardless of
	// completion order.
	results := make([]any, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(statsConcurrency)

	for i, shortURL := range args {
		i, shortURL := i, shortURL
		g.Go(func() error {
			result, err := client.LinkStats(ctx, shortURL, opts)
			if err != nil {
				return fmt.Errorf("stats for %s: %w", shortURL, err)
			}
			results[i] = map[string]any{
				"short_url": shortURL,
				"stats":     result.Decoded(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return printJSON(results)
}
