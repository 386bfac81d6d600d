package main

import (
	"bytes"
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
	shopID  string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shopledger-cli",
		Short: "ShopLedger CLI tool",
		Long:  `A command line interface for interacting with the ShopLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ShopLedger API")
	rootCmd.PersistentFlags().StringVar(&shopID, "shop", "", "Shop ID (required)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Party commands
	partyCmd := &cobra.Command{
		Use:   "party",
		Short: "Party operations",
	}

	var partyType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List parties of one type",
		Run: func(cmd *cobra.Command, args []string) {
			listParties(partyType)
		},
	}
	listCmd.Flags().StringVar(&partyType, "type", "customer", "Party type (customer or vendor)")

	var createName, createType, createOpening string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Onboard a new party",
		Run: func(cmd *cobra.Command, args []string) {
			createParty(createName, createType, createOpening)
		},
	}
	createCmd.Flags().StringVar(&createName, "name", "", "Display name")
	createCmd.Flags().StringVar(&createType, "type", "customer", "Party type (customer or vendor)")
	createCmd.Flags().StringVar(&createOpening, "opening", "0", "Opening balance")

	partyCmd.AddCommand(listCmd)
	partyCmd.AddCommand(createCmd)
	rootCmd.AddCommand(partyCmd)

	// Statement command
	var stmtFrom, stmtTo, stmtFormat string
	statementCmd := &cobra.Command{
		Use:   "statement [party-id]",
		Short: "Fetch a party statement for a date range",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fetchStatement(args[0], stmtFrom, stmtTo, stmtFormat)
		},
	}
	statementCmd.Flags().StringVar(&stmtFrom, "from", "", "Range start (YYYY-MM-DD)")
	statementCmd.Flags().StringVar(&stmtTo, "to", "", "Range end (YYYY-MM-DD)")
	statementCmd.Flags().StringVar(&stmtFormat, "format", "json", "Output format (json or csv)")
	rootCmd.AddCommand(statementCmd)

	// Outstanding command
	var outType, outAsOf, outFormat string
	outstandingCmd := &cobra.Command{
		Use:   "outstanding",
		Short: "Fetch outstanding balances for all parties of one type",
		Run: func(cmd *cobra.Command, args []string) {
			fetchOutstanding(outType, outAsOf, outFormat)
		},
	}
	outstandingCmd.Flags().StringVar(&outType, "type", "customer", "Party type (customer or vendor)")
	outstandingCmd.Flags().StringVar(&outAsOf, "as-of", "", "Cutoff date (YYYY-MM-DD, default today)")
	outstandingCmd.Flags().StringVar(&outFormat, "format", "json", "Output format (json or csv)")
	rootCmd.AddCommand(outstandingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path string, body []byte) []byte {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("X-Shop-ID", shopID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	return respBody
}

func printJSON(body []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(out.String())
}

func listParties(partyType string) {
	body := doRequest(http.MethodGet, "/api/v1/parties?type="+url.QueryEscape(partyType), nil)
	printJSON(body)
}

func createParty(name, partyType, opening string) {
	payload, _ := json.Marshal(map[string]string{
		"display_name":    name,
		"type":            partyType,
		"opening_balance": opening,
	})

	body := doRequest(http.MethodPost, "/api/v1/parties", payload)
	printJSON(body)
}

func fetchStatement(partyID, from, to, format string) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	if format == "csv" {
		query.Set("format", "csv")
	}

	body := doRequest(http.MethodGet, "/api/v1/parties/"+url.PathEscape(partyID)+"/statement?"+query.Encode(), nil)

	if format == "csv" {
		fmt.Print(string(body))
		return
	}
	printJSON(body)
}

func fetchOutstanding(partyType, asOf, format string) {
	query := url.Values{}
	query.Set("type", partyType)
	if asOf != "" {
		query.Set("as_of", asOf)
	}
	if format == "csv" {
		query.Set("format", "csv")
	}

	body := doRequest(http.MethodGet, "/api/v1/outstanding?"+query.Encode(), nil)

	if format == "csv" {
		fmt.Print(string(body))
		return
	}
	printJSON(body)
}
