package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tly/filter"
	"github.com/s0up4200/tly/tly"
)

var (
	listSearch    string
	listTagIDs    []int64
	listPixelIDs  []int64
	listDomains   []int64
	listStartDate string
	listEndDate   string
	listFilter    string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List short links on the account",
	Long: `List short links on the account. Server-side narrowing uses the
search/tag/pixel/domain/date flags; --filter additionally applies an expr
expression to each returned record on the client, e.g.

  tly list --filter 'clicks > 100 && description != nil'`,
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listSearch, "search", "", "search term")
	listCmd.Flags().Int64SliceVar(&listTagIDs, "tag-ids", nil, "tag ids to match")
	listCmd.Flags().Int64SliceVar(&listPixelIDs, "pixel-ids", nil, "pixel ids to match")
	listCmd.Flags().Int64SliceVar(&listDomains, "domains", nil, "domain ids to match")
	listCmd.Flags().StringVar(&listStartDate, "start-date", "", "start of the date range")
	listCmd.Flags().StringVar(&listEndDate, "end-date", "", "end of the date range")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "client-side filter expression")
}

func runList(cmd *cobra.Command, args []string) error {
	defer client.Close()

	opts := &tly.ListLinksOptions{
		Search:    listSearch,
		TagIDs:    listTagIDs,
		PixelIDs:  listPixelIDs,
		Domains:   listDomains,
		StartDate: tly.TimestampString(listStartDate),
		EndDate:   tly.TimestampString(listEndDate),
	}

	result, err := client.ListShortLinks(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if listFilter == "" {
		return printResult(result)
	}

	f, err := filter.Compile(listFilter)
	if err != nil {
		return usageError{err}
	}

	records, err := linkRecords(result)
	if err != nil {
		return err
	}
	matched, err := f.Apply(records)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("filter", f.String()).
		Int("total", len(records)).
		Int("matched", len(matched)).
		Msg("Applied client-side filter")

	return printJSON(matched)
}

// linkRecords extracts the record objects from a listing result. The API
// wraps paginated listings in a "data" array; bare arrays are accepted too.
func linkRecords(result tly.Result) ([]map[string]any, error) {
	var items []any
	switch value := result.Value.(type) {
	case []any:
		items = value
	case map[string]any:
		if data, ok := value["data"].([]any); ok {
			items = data
		}
	}
	if items == nil {
		return nil, fmt.Errorf("unexpected listing shape, cannot filter")
	}

	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records, nil
}
