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

	"github.com/mulisa/vsla-ledger/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vsla-cli",
		Short: "VSLA ledger CLI tool",
		Long:  `A command line interface for interacting with the VSLA ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the VSLA ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(newMeetingCmd())
	rootCmd.AddCommand(newBalanceCmd())
	rootCmd.AddCommand(newLedgerCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newMeetingCmd() *cobra.Command {
	var (
		filePath       string
		idempotencyKey string
	)

	meetingCmd := &cobra.Command{
		Use:   "meeting",
		Short: "Meeting operations",
	}

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Submit a meeting's line items from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			processMeeting(filePath, idempotencyKey)
		},
	}
	processCmd.Flags().StringVar(&filePath, "file", "", "Path to the meeting JSON file")
	processCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key for safe retries")
	_ = processCmd.MarkFlagRequired("file")

	meetingCmd.AddCommand(processCmd)

	return meetingCmd
}

func newBalanceCmd() *cobra.Command {
	var (
		cycleID  string
		memberID string
		source   string
	)

	balanceCmd := &cobra.Command{
		Use:   "balance [group-id]",
		Short: "Query a group's ledger balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getBalance(args[0], cycleID, memberID, source)
		},
	}
	balanceCmd.Flags().StringVar(&cycleID, "cycle", "", "Restrict to one savings cycle")
	balanceCmd.Flags().StringVar(&memberID, "member", "", "Restrict to one member")
	balanceCmd.Flags().StringVar(&source, "source", "", "Restrict to one entry source")

	return balanceCmd
}

func newLedgerCmd() *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}

	reconcileCmd := &cobra.Command{
		Use:   "reconcile [group-id]",
		Short: "Reconcile one group's paired entry totals",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			reconcileGroup(args[0])
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)
	ledgerCmd.AddCommand(reconcileCmd)

	return ledgerCmd
}

func newMigrateCmd() *cobra.Command {
	var (
		databaseURL    string
		migrationsPath string
	)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			if err := postgres.RunMigrations(databaseURL, migrationsPath); err != nil {
				fmt.Printf("Migration failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Migrations applied")
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Run: func(cmd *cobra.Command, args []string) {
			if err := postgres.RunMigrationsDown(databaseURL, migrationsPath); err != nil {
				fmt.Printf("Rollback failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Migration rolled back")
		},
	}

	for _, c := range []*cobra.Command{upCmd, downCmd} {
		c.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")
		c.Flags().StringVar(&migrationsPath, "path", "migrations", "Path to migration files")
	}

	migrateCmd.AddCommand(upCmd)
	migrateCmd.AddCommand(downCmd)

	return migrateCmd
}

// balanceQueryURL builds the balance endpoint URL with only the filters set.
func balanceQueryURL(base, groupID, cycleID, memberID, source string) string {
	q := url.Values{}
	if cycleID != "" {
		q.Set("cycle_id", cycleID)
	}
	if memberID != "" {
		q.Set("member_id", memberID)
	}
	if source != "" {
		q.Set("source", source)
	}

	u := fmt.Sprintf("%s/api/v1/groups/%s/balance", base, groupID)
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}

	return u
}

func processMeeting(filePath, idempotencyKey string) {
	payload, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Printf("Failed to read meeting file: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/meetings/process", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Meeting processing FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Meeting processed\n")
	fmt.Printf("Shares: %v  Loans: %v  Social fund: %v\n",
		result["shares_processed"], result["loans_processed"], result["social_fund_processed"])
	if errs, ok := result["errors"].([]any); ok && len(errs) > 0 {
		fmt.Printf("Rejected line items:\n")
		for _, e := range errs {
			fmt.Printf("  - %v\n", e)
		}
	}
}

func getBalance(groupID, cycleID, memberID, source string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(balanceQueryURL(baseURL, groupID, cycleID, memberID, source))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Balance query FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Group: %v\n", result["group_id"])
	fmt.Printf("Balance: %v\n", result["balance"])
}

func checkConsistency() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\n", resp.StatusCode)
		if detail, ok := result["detail"].(string); ok && detail != "" {
			fmt.Printf("Detail: %s\n", detail)
		}
		os.Exit(1)
	}

	fmt.Printf("Consistency check PASSED\n")
	if consistent, ok := result["consistent"].(bool); ok {
		fmt.Printf("Consistent: %v\n", consistent)
	}
}

func reconcileGroup(groupID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(fmt.Sprintf("%s/api/v1/groups/%s/reconciliation", baseURL, groupID))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Reconciliation FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Group: %v\n", result["group_id"])
	fmt.Printf("Group total: %v\n", result["group_total"])
	fmt.Printf("Member total: %v\n", result["member_total"])
	fmt.Printf("Reconciled: %v\n", result["is_reconciled"])
}
