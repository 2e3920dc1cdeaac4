package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smirnovmx/subtrack/internal/client"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Удалить подписку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !removeYes {
			fmt.Fprintf(cmd.OutOrStdout(), "delete subscription %s? [y/N]: ", id)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
		}

		err := apiClient().Delete(cmd.Context(), id)
		if errors.Is(err, client.ErrNotFound) {
			return fmt.Errorf("subscription %s not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete subscription: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted subscription %s\n", id)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "удалить без подтверждения")
}
