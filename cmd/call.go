package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tly/tly"
)

var callData string

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:       "call <method>",
	Short:     "Call any supported client operation by name",
	Args:      cobra.ExactArgs(1),
	ValidArgs: tly.OperationNames(),
	PreRunE:   initializeApp,
	RunE:      runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Long = "Call any supported client operation by name, passing its " +
		"arguments as a JSON object via --data. Argument keys use the API's " +
		"snake_case field names.\n\nSupported methods:\n\n" + methodTable()
	callCmd.Flags().StringVar(&callData, "data", "", `JSON object, example: '{"tag":"fall2026"}'`)
}

func runCall(cmd *cobra.Command, args []string) error {
	defer client.Close()

	payload, err := parseCallData(callData)
	if err != nil {
		return err
	}

	result, err := client.Call(cmd.Context(), args[0], payload)
	if err != nil {
		if errors.Is(err, tly.ErrUnknownOperation) ||
			errors.Is(err, tly.ErrMissingArgument) ||
			errors.Is(err, tly.ErrInvalidArgument) {
			return usageError{err}
		}
		return err
	}
	return printResult(result)
}

// parseCallData decodes the --data flag. The payload must be a JSON object;
// arrays and scalars are rejected before any request is made.
func parseCallData(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, usageError{fmt.Errorf("invalid JSON input: %w", err)}
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		return nil, usageError{errors.New("--data must be a JSON object")}
	}
	return object, nil
}

// methodTable renders the operation allow-list grouped the way the API
// documentation groups its endpoints.
func methodTable() string {
	byGroup := make(map[string][]string)
	for name, ep := range tly.Endpoints() {
		byGroup[ep.Group] = append(byGroup[ep.Group], fmt.Sprintf("  %-22s %-6s %s", name, ep.Method, ep.Path))
	}

	groups := make([]string, 0, len(byGroup))
	for group := range byGroup {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	var b strings.Builder
	for _, group := range groups {
		lines := byGroup[group]
		sort.Strings(lines)
		b.WriteString(group + ":\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
