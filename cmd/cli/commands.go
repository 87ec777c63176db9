package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

// Commands below query a running server at --host instead of the local store.

func init() {
	rootCmd.AddCommand(healthCmd, metricsCmd, reportCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remoteGet(cmd.OutOrStdout(), "/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get the server's Prometheus metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remoteGet(cmd.OutOrStdout(), "/metrics", nil)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch the season summary from the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if season != "" {
			q.Set("season", season)
		}
		return remoteGet(cmd.OutOrStdout(), "/api/summary", q)
	},
}

// remoteGet prints the body of a GET against the server. Non-2xx responses
// are returned as errors carrying the body.
func remoteGet(out io.Writer, endpoint string, query url.Values) error {
	target := host + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	resp, err := http.Get(target)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned %d: %s", endpoint, resp.StatusCode, body)
	}
	fmt.Fprintln(out, string(body))
	return nil
}
