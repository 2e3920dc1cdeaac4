package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smirnovmx/subtrack/internal/client"
)

var (
	editName     string
	editUsername string
	editStart    string
	editExpiry   string
	editUserID   string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить подписку",
	Long:  `Загружает текущую запись, подставляет переданные флаги и отправляет её целиком обратно. Непереданные флаги оставляют прежние значения.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		api := apiClient()

		sub, err := api.Get(cmd.Context(), id)
		if errors.Is(err, client.ErrNotFound) {
			return fmt.Errorf("subscription %s not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load subscription: %w", err)
		}

		if cmd.Flags().Changed("name") {
			sub.Name = editName
		}
		if cmd.Flags().Changed("username") {
			sub.Username = editUsername
		}
		if cmd.Flags().Changed("start") {
			sub.StartDate = editStart
		}
		if cmd.Flags().Changed("expiry") {
			sub.ExpiryDate = editExpiry
		}
		if cmd.Flags().Changed("user") {
			sub.UserID = editUserID
		}

		if err := api.Update(cmd.Context(), id, *sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "updated subscription %s\n", id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "название сервиса")
	editCmd.Flags().StringVar(&editUsername, "username", "", "имя пользователя")
	editCmd.Flags().StringVar(&editStart, "start", "", "дата начала, формат 2006-01-02")
	editCmd.Flags().StringVar(&editExpiry, "expiry", "", `дата окончания или "NA"`)
	editCmd.Flags().StringVar(&editUserID, "user", "", "идентификатор пользователя")
}
