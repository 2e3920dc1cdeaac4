// Package view содержит клиентскую логику отображения коллекции подписок:
// вычисление признака активности, поиск, фильтрацию по статусу, сортировку
// и подсчет статистики. Все функции чистые, сетевых вызовов здесь нет.
package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/smirnovmx/subtrack/internal/models"
)

// DateLayout формат дат в полях start_date и expiry_date.
const DateLayout = "2006-01-02"

// Entry подписка, аннотированная для отображения.
// Поле Active не хранится на сервере: оно каждый раз вычисляется заново
// относительно текущего момента, поэтому одна и та же запись может
// сменить статус между двумя загрузками без единой записи на диск.
type Entry struct {
	ID string
	models.Subscription
	Active bool
}

// Annotate превращает коллекцию id -> подписка в срез записей для отображения.
// Записи идут в порядке возрастания числовых ID, нечисловые ID — в конце.
// Признак активности вычисляется относительно момента now, единого для всего
// среза: в пределах одного рендера статус согласован.
func Annotate(subs map[string]models.Subscription, now time.Time) []Entry {
	entries := make([]Entry, 0, len(subs))
	for id, sub := range subs {
		entries = append(entries, Entry{
			ID:           id,
			Subscription: sub,
			Active:       isActive(sub.ExpiryDate, now),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, aerr := strconv.Atoi(entries[i].ID)
		b, berr := strconv.Atoi(entries[j].ID)
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// isActive реализует правило активности: подписка активна, если дата
// окончания равна "NA" либо разбирается в дату не раньше now.
// Неразбираемая дата считается истекшей.
func isActive(expiry string, now time.Time) bool {
	if expiry == models.NeverExpires {
		return true
	}
	t, err := time.Parse(DateLayout, expiry)
	if err != nil {
		return false
	}
	return !t.Before(now)
}

// Status фильтр по статусу подписки.
type Status string

const (
	StatusAll      Status = "all"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// SortBy способ сортировки списка.
type SortBy string

const (
	// SortByName сортирует по названию без учета регистра, по возрастанию.
	SortByName SortBy = "name"
	// SortByDate сортирует по дате начала, новые сверху.
	SortByDate SortBy = "date"
)

// Query параметры поиска, фильтрации и сортировки.
type Query struct {
	Search string
	Status Status
	SortBy SortBy
}

// Apply прогоняет записи через конвейер в фиксированном порядке:
// поиск, фильтр по статусу, сортировка. Исходный срез не изменяется.
func Apply(entries []Entry, q Query) []Entry {
	filtered := make([]Entry, 0, len(entries))

	term := strings.ToLower(q.Search)
	for _, e := range entries {
		if term != "" && !matches(e, term) {
			continue
		}
		switch q.Status {
		case StatusActive:
			if !e.Active {
				continue
			}
		case StatusInactive:
			if e.Active {
				continue
			}
		}
		filtered = append(filtered, e)
	}

	switch q.SortBy {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortByDate:
		sort.SliceStable(filtered, func(i, j int) bool {
			return startDate(filtered[i]).After(startDate(filtered[j]))
		})
	}

	return filtered
}

// matches проверяет вхождение подстроки term в название, имя пользователя
// или строковую форму user_id. Достаточно совпадения по любому из трёх полей.
func matches(e Entry, term string) bool {
	if strings.Contains(strings.ToLower(e.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Username), term) {
		return true
	}
	return strings.Contains(strings.ToLower(userIDString(e.UserID)), term)
}

// userIDString возвращает строковую форму непрозрачного user_id.
func userIDString(userID any) string {
	if userID == nil {
		return ""
	}
	return fmt.Sprint(userID)
}

// startDate разбирает дату начала; отсутствующая или неразбираемая дата
// считается самой ранней и при сортировке "новые сверху" уходит вниз.
func startDate(e Entry) time.Time {
	t, err := time.Parse(DateLayout, e.StartDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Stats статистика по отображаемому набору записей.
type Stats struct {
	Total  int
	Active int
}

// Count считает статистику по уже отфильтрованному набору.
// Сортировка на результат не влияет: она не меняет состав.
func Count(entries []Entry) Stats {
	s := Stats{Total: len(entries)}
	for _, e := range entries {
		if e.Active {
			s.Active++
		}
	}
	return s
}
