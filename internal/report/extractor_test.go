package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lkupryaha/trenerbot/internal/faults"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientReport = "Я сделала все тренировочные дни и все упражнения, " +
	"кроме ягодичного мостика, очень уставали икроножные мышцы"

func completionsServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), "unexpected path %s", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "gpt-4", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Contains(t, body.Messages[0].Content, "JSON format")
		assert.Equal(t, "user", body.Messages[1].Role)
		assert.Equal(t, testClientReport, body.Messages[1].Content)

		if status != http.StatusOK {
			http.Error(w, "nope", status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		resp := fmt.Sprintf(
			`{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":%s},"finish_reason":"stop"}]}`,
			mustMarshalString(t, content),
		)
		_, err := w.Write([]byte(resp))
		require.NoError(t, err)
	}))
}

func mustMarshalString(t *testing.T, s string) string {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	return string(data)
}

func TestExtractReport_CleanJSON(t *testing.T) {
	server := completionsServer(t, http.StatusOK,
		`{"isInjured": false, "allDaysDone": true, "allExercisesDone": false, "ProblematicExercises": ["ягодичный мостик"], "Comments": null}`,
	)
	defer server.Close()

	e := NewExtractor("test-key", server.URL, "", server.Client())
	rep, err := e.ExtractReport(context.Background(), testClientReport)
	require.NoError(t, err)

	assert.False(t, rep.IsInjured)
	assert.True(t, rep.AllDaysDone)
	assert.False(t, rep.AllExercisesDone)
	assert.Equal(t, []string{"ягодичный мостик"}, rep.ProblematicExercises)
	assert.Nil(t, rep.Comments)
}

func TestExtractReport_RepairsPythonBoolsAndFencing(t *testing.T) {
	server := completionsServer(t, http.StatusOK,
		"```"+`{"isInjured": True, "allDaysDone": True, "allExercisesDone": False, "ProblematicExercises": [], "Comments": null}`+"```",
	)
	defer server.Close()

	e := NewExtractor("test-key", server.URL, "", server.Client())
	rep, err := e.ExtractReport(context.Background(), testClientReport)
	require.NoError(t, err)

	assert.True(t, rep.IsInjured)
	assert.True(t, rep.AllDaysDone)
	assert.False(t, rep.AllExercisesDone)
}

func TestExtractReport_UnparsableContent(t *testing.T) {
	server := completionsServer(t, http.StatusOK, "Извини, я не смог разобрать отчет :(")
	defer server.Close()

	e := NewExtractor("test-key", server.URL, "", server.Client())
	_, err := e.ExtractReport(context.Background(), testClientReport)
	require.Error(t, err)
	assert.Equal(t, faults.KindParse, faults.KindOf(err))
}

func TestExtractReport_SchemaViolation(t *testing.T) {
	server := completionsServer(t, http.StatusOK, `{"isInjured": false, "vibe": "immaculate"}`)
	defer server.Close()

	e := NewExtractor("test-key", server.URL, "", server.Client())
	_, err := e.ExtractReport(context.Background(), testClientReport)
	require.Error(t, err)
	assert.Equal(t, faults.KindSchema, faults.KindOf(err))
}

func TestExtractReport_ServiceError(t *testing.T) {
	server := completionsServer(t, http.StatusBadGateway, "")
	defer server.Close()

	e := NewExtractor("test-key", server.URL, "", server.Client())
	_, err := e.ExtractReport(context.Background(), testClientReport)
	require.Error(t, err)

	assert.Equal(t, faults.KindRequest, faults.KindOf(err))
	var fe *faults.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusBadGateway, fe.Status)
}

func TestNormalizeBooleans_Idempotent(t *testing.T) {
	in := `{"isInjured": True, "allDaysDone": False}`
	once := NormalizeBooleans(in)
	assert.Equal(t, `{"isInjured": true, "allDaysDone": false}`, once)
	assert.Equal(t, once, NormalizeBooleans(once))
}
