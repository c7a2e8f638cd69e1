package actions

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wolfpad/wolfpad/pkg/ports"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// replyWith answers every completion with the given text.
func replyWith(text string) *mockCompleter {
	m := new(mockCompleter)
	m.On("Complete", mock.Anything, mock.Anything).Return(text, nil)
	return m
}

// failWith fails every completion with err.
func failWith(err error) *mockCompleter {
	m := new(mockCompleter)
	m.On("Complete", mock.Anything, mock.Anything).Return("", err)
	return m
}
