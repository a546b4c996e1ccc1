// Package tly provides a client for the T.LY URL shortener API.
//
// Every remote operation is a thin typed wrapper over a single request
// executor: the wrapper assembles the body or query from its parameters
// (optional fields are omitted entirely, never sent as null), the executor
// authenticates the request, maps non-success statuses to *APIError and
// normalizes the body into a Result with one of four shapes: decoded JSON,
// plain text, raw bytes, or empty.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tly.NewClient("your-api-token", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	result, err := client.CreateShortLink(ctx, "https://example.com", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Decoded())
//
// # Error Handling
//
// The client never retries or recovers internally. Transport failures
// (refused connections, timeouts, TLS problems) surface as wrapped plain
// errors; answers with status >= 400 surface as *APIError carrying the
// status code, an extracted message and the raw body:
//
//	var apiErr *tly.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// handle missing link
//	}
//
// # Dynamic dispatch
//
// Call invokes any operation by its snake_case name with a JSON-object
// argument bag, validated against the fixed table in Endpoints. This backs
// the CLI's `call` subcommand.
package tly
