package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-smart-calc/convert"
	"go-smart-calc/rates"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	converter := func(context.Context) (convert.Service, error) {
		return convert.NewWithRates(rates.Fallback()), nil
	}
	app := newApp(strings.NewReader(stdin), &out, converter)
	err := app.Run(append([]string{"smartcalc"}, args...))
	return out.String(), err
}

func TestCalc(t *testing.T) {
	out, err := run(t, "", "calc", "2", "+", "3*4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, err = run(t, "", "calc", "1/0")
	assert.Error(t, err)
	assert.Equal(t, "Error\n", out)
}

func TestKeys(t *testing.T) {
	out, err := run(t, "7\n*\n6\n=\n-\n2\n=\nC\n5\n/\n=\n", "keys")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"7", "7*", "7*6", "42",
		"42-", "42-2", "40",
		"",
		"5", "5/", "Error",
	}, "\n")+"\n", out)
}

func TestKeys_Quit(t *testing.T) {
	out, err := run(t, "1\nq\n2\n", "keys")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "", "convert", "--amount", "100", "--from", "USD", "--to", "PKR")
	require.NoError(t, err)
	assert.Equal(t, "100 USD = 28000.00 PKR\n", out)

	out, err = run(t, "", "convert", "--amount", "1", "--to", "POUND")
	assert.Error(t, err)
	assert.Equal(t, "Invalid currency\n", out)
}

func TestConvert_InvalidAmount(t *testing.T) {
	out, err := run(t, "", "convert", "--amount", "NaN", "--from", "USD", "--to", "EUR")
	assert.Error(t, err)
	assert.Equal(t, "Please enter a valid number\n", out)
}

func TestCurrencies(t *testing.T) {
	out, err := run(t, "", "currencies")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 15)
	assert.Equal(t, "AED", lines[0])
}

func TestDiscount(t *testing.T) {
	out, err := run(t, "", "discount", "--price", "100", "--percent", "20")
	require.NoError(t, err)
	assert.Equal(t, "Final Price: 80.00\nYou Save: 20.00\n", out)

	out, err = run(t, "", "discount", "--price", "100", "--percent", "150")
	assert.Error(t, err)
	assert.Equal(t, "Discount cannot exceed 100%\n", out)

	out, err = run(t, "", "discount", "--price", "-5", "--percent", "10")
	assert.Error(t, err)
	assert.Equal(t, "Values cannot be negative\n", out)
}
