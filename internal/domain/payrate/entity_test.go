package payrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRate(t *testing.T) {
	assert.NoError(t, ValidateRate(0))
	assert.NoError(t, ValidateRate(25.50))

	assert.ErrorIs(t, ValidateRate(-1), ErrInvalidRate)
	assert.ErrorIs(t, ValidateRate(math.NaN()), ErrInvalidRate)
	assert.ErrorIs(t, ValidateRate(math.Inf(1)), ErrInvalidRate)
	assert.ErrorIs(t, ValidateRate(math.Inf(-1)), ErrInvalidRate)
}
