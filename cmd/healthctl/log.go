package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"health-tracker/internal/health"
)

func newLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log [message...]",
		Short: "Handle a message as if it arrived by chat",
		Long: `Classify the message, store it and print the reply.

Examples:
  healthctl log -u +15551234567 "30 min yoga"
  healthctl log status`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.useCase(cmd.Context())
			if err != nil {
				return err
			}

			out, err := uc.HandleMessage(cmd.Context(), a.scope(), health.MessageInput{Text: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", out.Classification.Type, out.Response)
			return nil
		},
	}
}
