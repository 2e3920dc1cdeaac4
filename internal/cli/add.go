package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smirnovmx/subtrack/internal/models"
)

var (
	addName     string
	addUsername string
	addStart    string
	addExpiry   string
	addUserID   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Создать подписку",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sub := models.Subscription{
			Name:       addName,
			Username:   addUsername,
			StartDate:  addStart,
			ExpiryDate: addExpiry,
			UserID:     addUserID,
		}

		id, err := apiClient().Create(cmd.Context(), sub)
		if err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created subscription %d\n", id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "название сервиса")
	addCmd.Flags().StringVar(&addUsername, "username", "", "имя пользователя")
	addCmd.Flags().StringVar(&addStart, "start", "", "дата начала, формат 2006-01-02")
	addCmd.Flags().StringVar(&addExpiry, "expiry", models.NeverExpires, `дата окончания или "NA"`)
	addCmd.Flags().StringVar(&addUserID, "user", "", "идентификатор пользователя")

	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("user")
}
