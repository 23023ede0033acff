package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("submit answer: %w", ErrNoQuiz)

	assert.True(t, errors.Is(wrapped, ErrNoQuiz))
	assert.False(t, errors.Is(wrapped, ErrQuizOpen))

	var ge *GameError
	assert.True(t, errors.As(wrapped, &ge))
	assert.Equal(t, CodeNoQuiz, ge.Code)
	assert.Equal(t, "当前没有记牌测验", ge.Error())
}
