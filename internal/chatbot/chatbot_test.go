package chatbot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultBot(t *testing.T) *Bot {
	t.Helper()

	entries, err := Load("")
	require.NoError(t, err)

	bot, err := New(entries, DefaultThreshold)
	require.NoError(t, err)

	return bot
}

func TestLoadDefaultKnowledge(t *testing.T) {
	t.Parallel()

	entries, err := Load("")
	require.NoError(t, err)
	assert.Len(t, entries, 15)

	for _, e := range entries {
		assert.NotEmpty(t, e.Question)
		assert.NotEmpty(t, e.Answer)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kb.yaml")
	content := "- question: Where is the office?\n  answer: Downtown.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Where is the office?", entries[0].Question)
	assert.Equal(t, "Downtown.", entries[0].Answer)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("question: [unclosed"), 0o600))

	_, err = Load(path)
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(nil, 0.3)
	assert.Error(t, err)

	_, err = New([]Entry{{Question: "Hi?", Answer: " "}}, 0.3)
	assert.Error(t, err)

	bot, err := New([]Entry{{Question: "Hi?", Answer: "Hello"}}, 0)
	require.NoError(t, err)
	assert.InDelta(t, DefaultThreshold, bot.threshold, 1e-9)
}

func TestAnswer(t *testing.T) {
	t.Parallel()

	bot := newDefaultBot(t)

	testCases := []struct {
		name         string
		message      string
		wantMatched  bool
		wantQuestion string
		wantScore    float64
	}{
		{
			name:         "Exact intent",
			message:      "I want to book a trip to Turkey",
			wantMatched:  true,
			wantQuestion: "How do I book a trip?",
			wantScore:    1,
		},
		{
			name:         "Case and punctuation are ignored",
			message:      "CANCEL, my BOOKING!!!",
			wantMatched:  true,
			wantQuestion: "How can I cancel my booking?",
			wantScore:    1,
		},
		{
			name:         "Tie resolves to the first entry",
			message:      "trip",
			wantMatched:  true,
			wantQuestion: "How do I book a trip?",
			wantScore:    0.5,
		},
		{
			name:        "Unrelated message",
			message:     "hello there",
			wantMatched: false,
			wantScore:   0,
		},
		{
			name:        "Empty message",
			message:     "   ",
			wantMatched: false,
			wantScore:   0,
		},
		{
			name:        "Only stop words",
			message:     "how do I",
			wantMatched: false,
			wantScore:   0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reply := bot.Answer(tc.message)

			assert.Equal(t, tc.wantMatched, reply.Matched)
			assert.InDelta(t, tc.wantScore, reply.Score, 1e-9)

			if tc.wantMatched {
				assert.Equal(t, tc.wantQuestion, reply.Question)
				assert.NotEqual(t, FallbackAnswer, reply.Answer)
			} else {
				assert.Empty(t, reply.Question)
				assert.Equal(t, FallbackAnswer, reply.Answer)
			}
		})
	}
}

func TestAnswerBelowThreshold(t *testing.T) {
	t.Parallel()

	bot, err := New([]Entry{{Question: "alpha beta gamma delta", Answer: "A"}}, 0.5)
	require.NoError(t, err)

	reply := bot.Answer("alpha")
	assert.False(t, reply.Matched)
	assert.Equal(t, FallbackAnswer, reply.Answer)
	assert.InDelta(t, 0.25, reply.Score, 1e-9)

	reply = bot.Answer("alpha and beta")
	assert.True(t, reply.Matched)
	assert.Equal(t, "A", reply.Answer)
	assert.InDelta(t, 0.5, reply.Score, 1e-9)
}

func TestQuestions(t *testing.T) {
	t.Parallel()

	bot, err := New([]Entry{
		{Question: "First?", Answer: "1"},
		{Question: "Second?", Answer: "2"},
	}, 0.3)
	require.NoError(t, err)

	assert.Equal(t, []string{"First?", "Second?"}, bot.Questions())
}
