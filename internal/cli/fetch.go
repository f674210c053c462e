package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"hpa-news-api/internal/config"
	"hpa-news-api/internal/handlers"
	"hpa-news-api/internal/models"
	"hpa-news-api/pkg/lambda"
	"hpa-news-api/pkg/server"
)

// runner executes one request and returns the dispatcher response
type runner func(ctx context.Context, req *lambda.Request, debug bool) (*lambda.Response, error)

func defaultRunner(ctx context.Context, req *lambda.Request, debug bool) (*lambda.Response, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.DebugMode = true
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return nil, err
	}
	defer container.Close()

	return handlers.NewNewsHandler(container.NewsService, container.Logger, cfg.DebugMode).HandleSearch(ctx, req)
}

func newFetchCommand(run runner) *cobra.Command {
	var (
		filter models.SearchFilter
		method string
		text   bool
		debug  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch news, optionally filtered by keyword and date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(filter, method)
			if err != nil {
				return err
			}

			resp, err := run(cmd.Context(), req, debug)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if text {
				if err := renderText(out, resp.Body); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, string(resp.Body))
			}

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("request failed with status %d", resp.StatusCode)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.SortFlags = true

	f.StringVarP(&filter.Keyword, "keyword", "k", "", "Keyword to search for")
	f.StringVarP(&filter.StartDate, "start-date", "s", "", "Earliest publish date (YYYY-MM-DD)")
	f.StringVarP(&filter.EndDate, "end-date", "e", "", "Latest publish date (YYYY-MM-DD)")
	f.StringVarP(&method, "method", "X", "", "HTTP method to simulate (default GET, or POST when a filter is set)")
	f.BoolVar(&text, "text", false, "Print articles as plain text instead of JSON")
	f.BoolVar(&debug, "debug", false, "Log the event, parsed body and result")

	return cmd
}

// buildRequest simulates the inbound event the mobile client would send
func buildRequest(filter models.SearchFilter, method string) (*lambda.Request, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
		if filter.HasFilters() {
			method = http.MethodPost
		}
	}

	req := &lambda.Request{
		Method:  method,
		Path:    "/newsctl",
		Headers: map[string]string{"Content-Type": "application/json"},
	}

	if method == http.MethodPost {
		body, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		req.Body = body
	}

	return req, nil
}

func renderText(w io.Writer, body []byte) error {
	var result models.NewsResult
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if result.HasError() {
		fmt.Fprintf(w, "error: %s\n", result.Message())
		return nil
	}

	for i, item := range result.NewsItems {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("-", 40))
		}
		fmt.Fprintf(w, "%s\n%s (modified %s)\n%s\n\n", item.Title, item.PublishDate, item.ModifiedDate, item.URL)

		content, err := HTMLToText(item.Content)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, content)

		for _, file := range item.AttachmentFiles {
			fmt.Fprintf(w, "  * %s: %s\n", file.Filename, file.FileURL)
		}
	}
	fmt.Fprintf(w, "%d news items\n", len(result.NewsItems))

	return nil
}
