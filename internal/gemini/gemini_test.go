package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a server that answers every request with
// the given generated text, wrapped in the service's response envelope.
func newTestClient(t *testing.T, status int, generatedText string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"), "credential must not travel in the URL")

		w.WriteHeader(status)
		if status != http.StatusOK {
			return
		}
		envelope := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": generatedText}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(envelope)
	}))
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key-123",
		Timeout:  2 * time.Second,
	})
}

func TestDecodeLoose(t *testing.T) {
	type payload struct {
		Tasks []GeneratedTask `json:"tasks"`
	}

	plain := `{"tasks":[{"title":"a","category":"basic","duration":15}]}`

	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"plain json", plain, false},
		{"fenced block", "Here you go:\n```json\n" + plain + "\n```\nEnjoy!", false},
		{"fenced block no lang", "```\n" + plain + "\n```", false},
		{"embedded object", "Sure! " + plain + " -- hope that helps", false},
		{"not json at all", "not json at all", true},
		{"empty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			err := decodeLoose(tc.content, &p)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, p.Tasks, 1)
			assert.Equal(t, "a", p.Tasks[0].Title)
		})
	}
}

func TestFirstObjectSkipsBracesInStrings(t *testing.T) {
	obj, found := firstObject(`noise {"title":"curly } brace","n":1} trailing`)
	require.True(t, found)

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(obj), &v))
	assert.Equal(t, "curly } brace", v["title"])
}

func TestDailyTasksParsesFencedResponse(t *testing.T) {
	body := "```json\n" + `{"tasks":[
		{"title":"Gesture drawing","description":"10 one-minute poses","category":"anatomy","duration":15,"difficulty":"intermediate","tips":"Stay loose"},
		{"title":"Cube rotations","description":"Draw cubes in perspective","category":"perspective","duration":20,"difficulty":"beginner","tips":""}
	]}` + "\n```"
	c := newTestClient(t, http.StatusOK, body)

	res := c.DailyTasks(context.Background(), map[string]string{"basic": "beginner"}, time.Monday)
	assert.False(t, res.UsedFallback)
	require.Len(t, res.Data.Tasks, 2)
	assert.Equal(t, "Gesture drawing", res.Data.Tasks[0].Title)
	assert.Equal(t, "anatomy", res.Data.Tasks[0].Category)
}

func TestDailyTasksFallsBackOnGarbage(t *testing.T) {
	c := newTestClient(t, http.StatusOK, "not json at all")

	res := c.DailyTasks(context.Background(), map[string]string{"basic": "beginner"}, time.Monday)
	assert.True(t, res.UsedFallback)
	assert.Error(t, res.Err)
	assert.NotEmpty(t, res.Data.Tasks, "fallback must keep the app usable")
}

func TestDailyTasksFallsBackOnServerError(t *testing.T) {
	c := newTestClient(t, http.StatusInternalServerError, "")

	res := c.DailyTasks(context.Background(), nil, time.Monday)
	assert.True(t, res.UsedFallback)

	var apiErr *APIError
	require.ErrorAs(t, res.Err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestDailyTasksClampsAndSanitizes(t *testing.T) {
	tasks := make([]GeneratedTask, 0, 8)
	for i := 0; i < 8; i++ {
		tasks = append(tasks, GeneratedTask{Title: "t", Category: "???", Duration: 0})
	}
	raw, err := json.Marshal(TaskPlan{Tasks: tasks})
	require.NoError(t, err)
	c := newTestClient(t, http.StatusOK, string(raw))

	res := c.DailyTasks(context.Background(), nil, time.Monday)
	assert.False(t, res.UsedFallback)
	assert.Len(t, res.Data.Tasks, 5)
	for _, task := range res.Data.Tasks {
		assert.Equal(t, "basic", task.Category)
		assert.Equal(t, 15, task.Duration)
		assert.Equal(t, "beginner", task.Difficulty)
	}
}

func TestAnalyzeAssessmentFallsBackWithoutKey(t *testing.T) {
	c := NewClient(ClientConfig{Endpoint: "http://127.0.0.1:0", APIKey: ""})

	res := c.AnalyzeAssessment(context.Background(), map[string]string{"basic": "beginner"})
	assert.True(t, res.UsedFallback)
	assert.ErrorIs(t, res.Err, ErrNoAPIKey)
	assert.NotEmpty(t, res.Data.Strengths)
}

func TestWeeklyGoalsNormalizesTargets(t *testing.T) {
	raw := `{"goals":[{"title":"g","category":"color","targetCount":0,"tasks":["x"]}]}`
	c := newTestClient(t, http.StatusOK, raw)

	res := c.WeeklyGoals(context.Background(), nil)
	assert.False(t, res.UsedFallback)
	require.Len(t, res.Data.Goals, 1)
	assert.Equal(t, 1, res.Data.Goals[0].TargetCount)
}

func TestCoachingMessageReturnsTrimmedText(t *testing.T) {
	c := newTestClient(t, http.StatusOK, "  Keep drawing every day!  \n")

	res := c.CoachingMessage(context.Background(), CoachInput{Level: 2, Streak: 3})
	assert.False(t, res.UsedFallback)
	assert.Equal(t, "Keep drawing every day!", res.Data)
}

func TestTransportErrorsOmitKey(t *testing.T) {
	// Port 1 is unroutable; the dial failure produces a url.Error that
	// embeds the full request URL.
	c := NewClient(ClientConfig{
		Endpoint: "http://127.0.0.1:1",
		APIKey:   "SECRET-KEY-123",
		Timeout:  time.Second,
	})

	err := c.TestConnection(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")

	res := c.DailyTasks(context.Background(), nil, time.Monday)
	assert.True(t, res.UsedFallback)
	require.Error(t, res.Err)
	assert.NotContains(t, res.Err.Error(), "SECRET-KEY-123")
}

func TestRedactKey(t *testing.T) {
	assert.Equal(t, "(unset)", RedactKey(""))
	assert.Equal(t, "a…", RedactKey("abc"))
	assert.Equal(t, "AIzaSy…", RedactKey("AIzaSyEXAMPLEKEY"))
}
