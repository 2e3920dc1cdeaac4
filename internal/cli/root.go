// Package cli содержит команды консольного клиента subtrack-cli.
//
// Клиент ходит в HTTP API сервиса подписок: простые команды печатают
// результат в терминал, команда ui запускает полноэкранный интерфейс.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/smirnovmx/subtrack/internal/client"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:     "subtrack-cli",
	Short:   "Клиент сервиса учета подписок",
	Long:    `subtrack-cli — консольный клиент сервиса учета подписок: список с поиском и сортировкой, создание, редактирование и удаление записей.`,
	Version: "1.0.0",
}

// Execute запускает корневую команду.
func Execute() error {
	return rootCmd.Execute()
}

// apiClient создает клиент API по адресу из флага --api.
func apiClient() *client.Client {
	return client.New(apiURL)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:3000", "адрес API сервера")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(uiCmd)
}
