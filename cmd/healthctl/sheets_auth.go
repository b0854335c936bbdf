package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const tokenPath = "token.json"

// newSheetsAuthCmd authorizes installed-app credentials once and saves
// token.json for the Sheets storage driver. Service accounts need no token.
func newSheetsAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets-auth [credentials.json]",
		Short: "Authorize Google Sheets access and write token.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) > 0 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}

			config, err := google.ConfigFromJSON(data, sheetsapi.SpreadsheetsScope)
			if err != nil {
				return fmt.Errorf("parse credentials: %w (is %q an OAuth Desktop App credentials file?)", err, credsPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open this URL in a browser and sign in with the account that owns the spreadsheet:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Paste the authorization code: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := config.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("create %s: %w", tokenPath, err)
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("write %s: %w", tokenPath, err)
			}
			fmt.Fprintf(out, "\n%s saved. Restart the server with storage.driver=sheets.\n", tokenPath)
			return nil
		},
	}
}
