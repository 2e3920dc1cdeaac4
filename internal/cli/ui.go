package cli

import (
	"github.com/spf13/cobra"

	"github.com/smirnovmx/subtrack/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Запустить полноэкранный интерфейс",
	RunE: func(_ *cobra.Command, _ []string) error {
		return tui.Run(apiClient())
	},
}
