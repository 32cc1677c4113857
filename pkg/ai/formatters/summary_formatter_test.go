package formatters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedChat(output string, err error) ChatFunc {
	return func(ctx context.Context, input string) (string, error) {
		return output, err
	}
}

func TestSummaryFormatter_PlainJSON(t *testing.T) {
	f := NewSummaryFormatter(fixedChat(`{"summary":"Data science student."}`, nil), "english")
	out, err := f.Format(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Data science student.", out["summary"])
}

func TestSummaryFormatter_PromptCarriesLanguageAndPayload(t *testing.T) {
	var prompt string
	chat := func(ctx context.Context, input string) (string, error) {
		prompt = input
		return `{"summary":"ok"}`, nil
	}
	_, err := NewSummaryFormatter(chat, "portuguese").Format(context.Background(), map[string]interface{}{"name": "Ana"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "portuguese")
	assert.Contains(t, prompt, `"name":"Ana"`)
}

func TestSummaryFormatter_Errors(t *testing.T) {
	_, err := NewSummaryFormatter(fixedChat("", errors.New("boom")), "english").Format(context.Background(), nil)
	assert.Error(t, err)

	_, err = NewSummaryFormatter(fixedChat("not json at all", nil), "english").Format(context.Background(), nil)
	assert.Error(t, err)

	_, err = NewSummaryFormatter(fixedChat(`{"summary":"   "}`, nil), "english").Format(context.Background(), nil)
	assert.Error(t, err)
}

func TestSanitizeSummary_TruncatesAtWord(t *testing.T) {
	out := map[string]interface{}{"summary": strings.Repeat("word ", 200)}
	require.NoError(t, sanitizeSummary(out))
	s := out["summary"].(string)
	assert.LessOrEqual(t, len(s), summaryMaxLen)
	assert.True(t, strings.HasSuffix(s, "word"))
}
