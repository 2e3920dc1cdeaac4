package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smirnovmx/subtrack/internal/view"
)

var (
	listSearch string
	listStatus string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать список подписок",
	Long:  `Загружает коллекцию подписок с сервера и печатает таблицу. Поиск, фильтр по статусу и сортировка выполняются локально.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		subs, err := apiClient().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load subscriptions: %w", err)
		}

		entries := view.Annotate(subs, time.Now())
		filtered := view.Apply(entries, view.Query{
			Search: listSearch,
			Status: view.Status(listStatus),
			SortBy: view.SortBy(listSort),
		})

		activeMark := color.New(color.FgGreen).SprintFunc()
		inactiveMark := color.New(color.FgRed).SprintFunc()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tUSERNAME\tSTATUS\tSTART\tEXPIRY\tUSER")
		for _, e := range filtered {
			status := inactiveMark("inactive")
			if e.Active {
				status = activeMark("active")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%v\n",
				e.ID, orNA(e.Name), orNA(e.Username), status,
				orNA(e.StartDate), orNA(e.ExpiryDate), e.UserID)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		stats := view.Count(filtered)
		fmt.Fprintf(cmd.OutOrStdout(), "\ntotal: %d, active: %d\n", stats.Total, stats.Active)
		return nil
	},
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "подстрока для поиска по названию, имени пользователя или user_id")
	listCmd.Flags().StringVar(&listStatus, "status", "all", "фильтр по статусу: all, active или inactive")
	listCmd.Flags().StringVar(&listSort, "sort", "", "сортировка: name или date")
}
