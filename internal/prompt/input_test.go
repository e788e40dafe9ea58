package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPrompter struct {
	response string
	err      error
	prompted string
}

func (m *mockPrompter) Prompt(text string) (string, error) {
	m.prompted = text
	return m.response, m.err
}

func (m *mockPrompter) Close() error { return nil }

func TestPathInputWithPrompterReturnsTrimmedPath(t *testing.T) {
	t.Parallel()

	mock := &mockPrompter{response: "  engines.tk-clarisse.project  "}

	result, err := PathInputWithPrompter(mock, "Setting path:", []string{"engines.tk-clarisse.project"})
	require.NoError(t, err)
	assert.Equal(t, "engines.tk-clarisse.project", result)
	assert.Contains(t, mock.prompted, "Setting path:")
}

func TestPathInputWithPrompterPropagatesError(t *testing.T) {
	t.Parallel()

	mock := &mockPrompter{err: errors.New("terminal gone")}

	_, err := PathInputWithPrompter(mock, "Setting path:", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path input failed")
}
