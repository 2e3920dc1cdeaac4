// Package tui реализует полноэкранный терминальный интерфейс клиента:
// таблицу подписок с живым поиском, фильтром по статусу и сортировкой,
// форму создания и редактирования и удаление с подтверждением.
//
// Список, загруженный с сервера, хранится в модели как локальный кеш:
// поиск и сортировка работают по нему без сетевых запросов, а после
// каждой мутации кеш целиком заменяется свежей загрузкой.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smirnovmx/subtrack/internal/client"
	"github.com/smirnovmx/subtrack/internal/models"
	"github.com/smirnovmx/subtrack/internal/view"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeForm
	modeConfirmDelete
)

const formFields = 5

// Model модель интерфейса.
type Model struct {
	api     *client.Client
	spinner spinner.Model

	mode    mode
	entries []view.Entry // локальный кеш последней загрузки
	cursor  int

	search textinput.Model
	status view.Status
	sortBy view.SortBy

	form      [formFields]textinput.Model // name, username, start, expiry, user
	formFocus int
	formMode  view.FormMode

	pendingDelete string

	loading   bool
	statusMsg string
	errMsg    string
	width     int
	height    int
}

// NewModel создает модель интерфейса поверх клиента API.
func NewModel(api *client.Client) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	search := textinput.New()
	search.Placeholder = "поиск по названию, имени пользователя или user_id"
	search.Prompt = "/ "

	labels := [formFields]string{"name", "username", "start date (2006-01-02)", "expiry date (или NA)", "user id"}
	var form [formFields]textinput.Model
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		form[i] = in
	}

	return Model{
		api:      api,
		spinner:  s,
		search:   search,
		status:   view.StatusAll,
		form:     form,
		formMode: view.CreateMode(),
		loading:  true,
	}
}

// Run запускает интерфейс и блокируется до выхода пользователя.
func Run(api *client.Client) error {
	_, err := tea.NewProgram(NewModel(api), tea.WithAltScreen()).Run()
	return err
}

// Init запускает спиннер и первую загрузку коллекции.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadSubscriptions(m.api))
}

// visible возвращает записи кеша, пропущенные через конвейер
// поиск -> фильтр по статусу -> сортировка.
func (m Model) visible() []view.Entry {
	return view.Apply(m.entries, view.Query{
		Search: m.search.Value(),
		Status: m.status,
		SortBy: m.sortBy,
	})
}

// Update обрабатывает сообщения интерфейса.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case subsLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.entries = msg
		m.clampCursor()
		return m, nil

	case recordLoadedMsg:
		m.mode = modeForm
		m.formMode = view.EditMode(msg.id)
		m.fillForm(msg.sub)
		return m, nil

	case mutationDoneMsg:
		// Кеш не правится на месте: после мутации список перечитывается целиком.
		m.mode = modeBrowse
		m.loading = true
		m.statusMsg = string(msg)
		return m, loadSubscriptions(m.api)

	case errorMsg:
		// Ошибка показывается в статусной строке, уже отрисованные
		// строки кеша остаются нетронутыми.
		m.loading = false
		m.errMsg = string(msg)
		if m.mode == modeConfirmDelete {
			m.mode = modeBrowse
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink
	case "f":
		m.status = nextStatus(m.status)
		m.clampCursor()
	case "s":
		m.sortBy = nextSort(m.sortBy)
	case "r":
		m.loading = true
		m.statusMsg = ""
		return m, loadSubscriptions(m.api)
	case "a":
		m.mode = modeForm
		m.formMode = view.CreateMode()
		m.fillForm(models.Subscription{ExpiryDate: models.NeverExpires})
		return m, textinput.Blink
	case "e":
		if e, ok := m.selected(); ok {
			// Запись перечитывается с сервера, а не берется из кеша.
			return m, fetchRecord(m.api, e.ID)
		}
	case "d":
		if e, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
			m.pendingDelete = e.ID
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.mode = modeBrowse
		m.search.Blur()
		m.clampCursor()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		m.focusField((m.formFocus + 1) % formFields)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.focusField((m.formFocus + formFields - 1) % formFields)
		return m, textinput.Blink
	case "enter":
		if m.formFocus < formFields-1 {
			m.focusField(m.formFocus + 1)
			return m, textinput.Blink
		}
		sub := m.formRecord()
		m.loading = true
		return m, submitForm(m.api, m.formMode, sub)
	}
	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.loading = true
		return m, deleteRecord(m.api, m.pendingDelete)
	case "n", "esc":
		m.mode = modeBrowse
		m.pendingDelete = ""
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) clampCursor() {
	visible := len(m.visible())
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (view.Entry, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return view.Entry{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) fillForm(sub models.Subscription) {
	values := [formFields]string{
		sub.Name,
		sub.Username,
		sub.StartDate,
		sub.ExpiryDate,
		userIDValue(sub.UserID),
	}
	for i := range m.form {
		m.form[i].SetValue(values[i])
		m.form[i].Blur()
	}
	m.focusField(0)
}

func (m *Model) focusField(i int) {
	m.form[m.formFocus].Blur()
	m.formFocus = i
	m.form[i].Focus()
}

// formRecord собирает запись из полей формы.
func (m Model) formRecord() models.Subscription {
	return models.Subscription{
		Name:       strings.TrimSpace(m.form[0].Value()),
		Username:   strings.TrimSpace(m.form[1].Value()),
		StartDate:  strings.TrimSpace(m.form[2].Value()),
		ExpiryDate: strings.TrimSpace(m.form[3].Value()),
		UserID:     strings.TrimSpace(m.form[4].Value()),
	}
}

func userIDValue(userID any) string {
	if userID == nil {
		return ""
	}
	return fmt.Sprint(userID)
}

func nextStatus(s view.Status) view.Status {
	switch s {
	case view.StatusAll:
		return view.StatusActive
	case view.StatusActive:
		return view.StatusInactive
	default:
		return view.StatusAll
	}
}

func nextSort(s view.SortBy) view.SortBy {
	switch s {
	case "":
		return view.SortByName
	case view.SortByName:
		return view.SortByDate
	default:
		return ""
	}
}
