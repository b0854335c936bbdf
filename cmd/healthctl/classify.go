package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"health-tracker/internal/bootstrap"
	"health-tracker/internal/classifier"
)

func newClassifyCmd(a *app) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "classify [message...]",
		Short: "Classify a message without storing it",
		Long: `Print the classification of a message as JSON.

Examples:
  healthctl classify "I ran 3 miles in 30 minutes"
  healthctl classify --offline salad for lunch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			var result classifier.Classification
			if offline {
				result = classifier.ClassifyFallback(text)
			} else {
				if err := a.load(); err != nil {
					return err
				}
				result = bootstrap.NewClassifier(a.cfg, a.l).Classify(cmd.Context(), text)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "use keyword rules only, skip the model")
	return cmd
}
