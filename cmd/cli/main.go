package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinilab-cli",
		Short: "CliniLab CLI tool",
		Long:  `A command line interface for interacting with the CliniLab API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the CliniLab API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Dashboard commands
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Dashboard aggregates",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog counts",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/dashboard/stats", nil)
		},
	}

	var summaryDate string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the day's income and expense totals",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/dashboard/summary", map[string]string{"date": summaryDate})
		},
	}
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Day to summarize (YYYY-MM-DD, default today)")

	var statusDate string
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the day's receipt counts per status",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/dashboard/status", map[string]string{"date": statusDate})
		},
	}
	statusCmd.Flags().StringVar(&statusDate, "date", "", "Day to count (YYYY-MM-DD, default today)")

	dashboardCmd.AddCommand(statsCmd, summaryCmd, statusCmd)
	rootCmd.AddCommand(dashboardCmd)

	// Cash cut commands
	cashCutCmd := &cobra.Command{
		Use:   "cashcuts",
		Short: "Cash reconciliation",
	}

	var branchID string
	listCutsCmd := &cobra.Command{
		Use:   "list",
		Short: "List cash cuts for a branch",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/cash-cuts", map[string]string{"branch_id": branchID})
		},
	}
	listCutsCmd.Flags().StringVar(&branchID, "branch", "", "Branch ID")

	var previewBranch, previewDate, previewCash string
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a reconciliation without persisting it",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/cash-cuts/preview", map[string]string{
				"branch_id":    previewBranch,
				"date":         previewDate,
				"initial_cash": previewCash,
			})
		},
	}
	previewCmd.Flags().StringVar(&previewBranch, "branch", "", "Branch ID")
	previewCmd.Flags().StringVar(&previewDate, "date", "", "Day to reconcile (YYYY-MM-DD, default today)")
	previewCmd.Flags().StringVar(&previewCash, "initial-cash", "0", "Cash in the drawer at day start")

	cashCutCmd.AddCommand(listCutsCmd, previewCmd)
	rootCmd.AddCommand(cashCutCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string, params map[string]string) {
	endpoint := baseURL + path
	if len(params) > 0 {
		values := url.Values{}
		for k, v := range params {
			if v != "" {
				values.Set(k, v)
			}
		}
		if encoded := values.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}
