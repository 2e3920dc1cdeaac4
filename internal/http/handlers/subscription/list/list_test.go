package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smirnovmx/subtrack/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) (map[string]models.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.Subscription), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "коллекция с записями",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(map[string]models.Subscription{
					"1": {Name: "Netflix", StartDate: "2024-01-01", ExpiryDate: "NA", UserID: "1"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"1":{"name":"Netflix"`,
		},
		{
			name: "пустая коллекция отдается как пустой объект",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(map[string]models.Subscription{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{}`,
		},
		{
			name: "ошибка хранилища",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("parse error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"could not load subscriptions"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/subscriptions", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
