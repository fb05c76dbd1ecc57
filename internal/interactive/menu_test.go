package interactive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChoices(t *testing.T) {
	options := []MenuOption{
		{Name: "Average", Description: "Average durations"},
		{Name: "Filter", Description: "Filter lines"},
	}

	choices, optionMap := buildChoices(options)

	require.Len(t, choices, 3)
	assert.Equal(t, "Average - Average durations", choices[0])
	assert.Equal(t, "Filter - Filter lines", choices[1])
	assert.Equal(t, exitChoice, choices[2])
	assert.Len(t, optionMap, 2)
}

func TestDispatch(t *testing.T) {
	called := false
	errAction := errors.New("action failed")

	_, optionMap := buildChoices([]MenuOption{
		{
			Name:        "Run",
			Description: "runs",
			Action: func() error {
				called = true
				return nil
			},
		},
		{
			Name:        "Fail",
			Description: "fails",
			Action: func() error {
				return errAction
			},
		},
	})

	t.Run("runs selected action", func(t *testing.T) {
		require.NoError(t, dispatch("Run - runs", optionMap))
		assert.True(t, called)
	})

	t.Run("propagates action error", func(t *testing.T) {
		assert.ErrorIs(t, dispatch("Fail - fails", optionMap), errAction)
	})

	t.Run("exit", func(t *testing.T) {
		assert.ErrorIs(t, dispatch(exitChoice, optionMap), ErrExit)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.ErrorIs(t, dispatch("Nope", optionMap), ErrExit)
	})
}
