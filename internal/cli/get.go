package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smirnovmx/subtrack/internal/client"
	"github.com/smirnovmx/subtrack/internal/models"
	"github.com/smirnovmx/subtrack/internal/view"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать одну подписку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		sub, err := apiClient().Get(cmd.Context(), id)
		if errors.Is(err, client.ErrNotFound) {
			return fmt.Errorf("subscription %s not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load subscription: %w", err)
		}

		entries := view.Annotate(map[string]models.Subscription{id: *sub}, time.Now())
		e := entries[0]

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:          %s\n", e.ID)
		fmt.Fprintf(out, "name:        %s\n", orNA(e.Name))
		fmt.Fprintf(out, "username:    %s\n", orNA(e.Username))
		fmt.Fprintf(out, "start_date:  %s\n", orNA(e.StartDate))
		fmt.Fprintf(out, "expiry_date: %s\n", orNA(e.ExpiryDate))
		fmt.Fprintf(out, "user_id:     %v\n", e.UserID)
		if e.Active {
			fmt.Fprintln(out, "status:      active")
		} else {
			fmt.Fprintln(out, "status:      inactive")
		}
		return nil
	},
}
