package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
)

func TestAsk(t *testing.T) {
	output := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader("  Chicago \nlast"), output)

	answer, err := prompter.Ask("city? ")
	require.NoError(t, err)
	assert.Equal(t, "Chicago", answer)

	answer, err = prompter.Ask("again? ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = prompter.Ask("closed? ")
	assert.ErrorIs(t, err, dataErrors.ErrInputClosed)

	assert.Equal(t, "city? again? closed? ", output.String())
}

func TestAskChoiceRepromptsUntilValid(t *testing.T) {
	output := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader("boston\n\nNEW YORK CITY\n"), output)

	answer, err := prompter.AskChoice("city?\n", "invalid", []string{"chicago", "new york city"})
	require.NoError(t, err)
	assert.Equal(t, "new york city", answer)
	assert.Equal(t, 2, strings.Count(output.String(), "invalid\n"))
	assert.Equal(t, 3, strings.Count(output.String(), "city?\n"))
}

func TestAskChoiceInputClosed(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("boston\n"), &bytes.Buffer{})

	_, err := prompter.AskChoice("city?\n", "invalid", []string{"chicago"})
	assert.ErrorIs(t, err, dataErrors.ErrInputClosed)
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "yes\n", expected: true},
		{input: "YES\n", expected: true},
		{input: " Yes \n", expected: true},
		{input: "y\n", expected: false},
		{input: "no\n", expected: false},
		{input: "\n", expected: false},
		{input: "yes please\n", expected: false},
	}

	for _, tc := range tests {
		t.Run(strings.TrimSpace(tc.input), func(t *testing.T) {
			prompter := NewPrompter(strings.NewReader(tc.input), &bytes.Buffer{})
			answer, err := prompter.AskYesNo("continue? ")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, answer)
		})
	}
}

func TestCollectFilters(t *testing.T) {
	output := &bytes.Buffer{}
	input := "London\nWashington\njuly\nJune\nfunday\nALL\n"
	prompter := NewPrompter(strings.NewReader(input), output)

	filters, err := prompter.CollectFilters()
	require.NoError(t, err)

	assert.Equal(t, Filters{City: "washington", Month: "june", Day: "all"}, filters)
	assert.Contains(t, output.String(), welcomeMessage)
	assert.Contains(t, output.String(), invalidCity)
	assert.Contains(t, output.String(), invalidMonth)
	assert.Contains(t, output.String(), invalidDay)
	assert.True(t, strings.HasSuffix(output.String(), Separator+"\n"))
}

func TestCollectFiltersInputClosed(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("chicago\n"), &bytes.Buffer{})

	_, err := prompter.CollectFilters()
	assert.ErrorIs(t, err, dataErrors.ErrInputClosed)
}
