package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
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
		Use:   "bankledger-cli",
		Short: "Bank ledger CLI tool",
		Long:  `A command line interface for interacting with the bank ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the bank ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(bankCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/accounts")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/accounts/" + args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "balance [id]",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/accounts/" + args[0] + "/balance")
		},
	})

	var name string
	var balance string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/accounts", map[string]any{
				"name":    name,
				"balance": balance,
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Account name")
	createCmd.Flags().StringVar(&balance, "balance", "0", "Initial balance")
	createCmd.MarkFlagRequired("name")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodDelete, "/api/accounts/"+args[0], nil)
		},
	})

	return cmd
}

func transferCmd() *cobra.Command {
	var origin, destination, bankID int64
	var amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move money between two accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/accounts/transfer", map[string]any{
				"originAccountId":      origin,
				"destinationAccountId": destination,
				"amount":               amount,
				"bankId":               bankID,
			})
		},
	}

	cmd.Flags().Int64Var(&origin, "from", 0, "Origin account ID")
	cmd.Flags().Int64Var(&destination, "to", 0, "Destination account ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	cmd.Flags().Int64Var(&bankID, "bank", 1, "Bank ID")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func bankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Bank operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Get a bank by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/banks/" + args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "transfers [id]",
		Short: "Show how many transfers a bank has processed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/banks/" + args[0] + "/transfers")
		},
	})

	return cmd
}

func getAndPrint(path string) error {
	return doRequest(http.MethodGet, path, nil)
}

func postAndPrint(path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return doRequest(http.MethodPost, path, body)
}

func doRequest(method, path string, body []byte) error {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	if len(respBody) == 0 {
		fmt.Printf("OK (status %d)\n", resp.StatusCode)
		return nil
	}

	var decoded any
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		fmt.Println(string(respBody))
		return nil
	}

	printJSON(decoded)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
