// Package main provides the flit-admin CLI for server curation and
// player administration.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flitgame/flit-server/internal/adminauth"
)

const defaultServerURL = "http://localhost:8080"

var (
	serverURL string

	statsPlayer string
	statsName   string
	statsDelta  int64

	grantPlayer string
	grantAmount string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flit-admin",
		Short:         "Admin CLI for the flit game server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL, "base URL of the flit server")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newGrantCmd())

	return rootCmd
}

func tokenStore() *adminauth.TokenStore {
	home, err := os.UserHomeDir()
	fallback := ""
	if err == nil {
		fallback = filepath.Join(home, ".flit", "secrets.json")
	}
	return adminauth.NewTokenStore("flit-admin", fallback)
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store the admin API token",
		Args:  cobra.NoArgs,
		RunE:  runLoginCmd,
	}
}

func runLoginCmd(cmd *cobra.Command, _ []string) error {
	fmt.Fprint(os.Stderr, "Admin token: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read token: %w", err)
	}
	token := strings.TrimSpace(line)

	if err := tokenStore().SetToken(token); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Token stored")
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored admin API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tokenStore().Delete(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token removed")
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Inspect and adjust player stats",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show a player's stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsGetCmd,
	}
	getCmd.Flags().StringVar(&statsPlayer, "player", "", "player id")
	_ = getCmd.MarkFlagRequired("player")

	incrementCmd := &cobra.Command{
		Use:   "increment",
		Short: "Adjust a player stat counter",
		Args:  cobra.NoArgs,
		RunE:  runStatsIncrementCmd,
	}
	incrementCmd.Flags().StringVar(&statsPlayer, "player", "", "player id")
	incrementCmd.Flags().StringVar(&statsName, "stat", "", "stat name")
	incrementCmd.Flags().Int64Var(&statsDelta, "delta", 1, "amount to add (may be negative)")
	_ = incrementCmd.MarkFlagRequired("player")
	_ = incrementCmd.MarkFlagRequired("stat")

	statsCmd.AddCommand(getCmd)
	statsCmd.AddCommand(incrementCmd)
	return statsCmd
}

func runStatsGetCmd(cmd *cobra.Command, _ []string) error {
	var response struct {
		PlayerID string           `json:"player_id"`
		Stats    map[string]int64 `json:"stats"`
	}
	if err := apiCall("GET", "/api/v1/admin/stats/"+statsPlayer, nil, &response); err != nil {
		return err
	}
	if len(response.Stats) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stats recorded")
		return nil
	}
	for name, value := range response.Stats {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\n", name, value)
	}
	return nil
}

func runStatsIncrementCmd(cmd *cobra.Command, _ []string) error {
	body := map[string]interface{}{
		"player_id": statsPlayer,
		"stat":      statsName,
		"delta":     statsDelta,
	}
	if err := apiCall("POST", "/api/v1/admin/stats/increment", body, nil); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Incremented %s by %d for %s\n", statsName, statsDelta, statsPlayer)
	return nil
}

func newGrantCmd() *cobra.Command {
	grantCmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant coins to a player",
		Args:  cobra.NoArgs,
		RunE:  runGrantCmd,
	}
	grantCmd.Flags().StringVar(&grantPlayer, "player", "", "player id")
	grantCmd.Flags().StringVar(&grantAmount, "amount", "", "coin amount (decimal)")
	_ = grantCmd.MarkFlagRequired("player")
	_ = grantCmd.MarkFlagRequired("amount")
	return grantCmd
}

func runGrantCmd(cmd *cobra.Command, _ []string) error {
	body := map[string]interface{}{
		"player_id": grantPlayer,
		"amount":    grantAmount,
	}
	if err := apiCall("POST", "/api/v1/admin/coins/grant", body, nil); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Granted %s coins to %s\n", grantAmount, grantPlayer)
	return nil
}

// apiCall performs an authenticated request against the admin API and
// decodes the JSON response into out when out is non-nil.
func apiCall(method, path string, body interface{}, out interface{}) error {
	token, err := tokenStore().GetToken()
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, strings.TrimRight(serverURL, "/")+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
