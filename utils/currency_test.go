package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$495.00", FormatCurrency(495, "USD"))
	assert.Equal(t, "€12.50", FormatCurrency(12.5, "eur"))
	assert.Equal(t, "CHF 80.00", FormatCurrency(80, "CHF"))
	assert.Equal(t, "80.00", FormatCurrency(80, ""))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 45.0, Round2(450*0.10))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 123.46, Round2(123.456))
	assert.Equal(t, -123.46, Round2(-123.456))
}
