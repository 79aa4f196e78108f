package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lkupryaha/trenerbot/internal/faults"
	"github.com/lkupryaha/trenerbot/internal/telemetry/tracing"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	// completions are slow, they get a longer deadline
	// than the backend requests
	completionTimeout = 60 * time.Second

	DefaultModel = "gpt-4"

	// single fixed instruction with one worked example; the answer is parsed
	// as strict JSON, with the repair fallbacks in ExtractReport
	systemPrompt = "Your job is to analyze a fitness training report and convert the information into a structured " +
		"JSON format. The report details the users training activities, any injuries or issues they faced, " +
		"and any exercises they could not complete or found difficult. The response should be in " +
		"a JSON format suitable for direct conversion into a dictionary without any additional comments. " +
		"```Пример: На этой неделе я сделала все тренировочные дни, в них я сделала все упражнения, " +
		"кроме приседаний со штангой, так как у меня болело правое колено. В остальном все хорошо и проблем не было.``` " +
		"Ответ: ```{\"isInjured\": true, \"allDaysDone\": true, \"allExercisesDone\": false, " +
		"\"ProblematicExercises\": [\"приседания со штангой\"], \"Comments\": null}``` "
)

// Extractor turns a client's free-text weekly report into a validated Report
// through the external chat-completions service. The service is generative
// and non-deterministic; the extractor only enforces the schema contract and
// repairs the two misbehaviors seen in the wild (Python-style booleans and
// backtick fencing).
type Extractor struct {
	client openai.Client
	model  string
}

// NewExtractor builds an extractor for the completions endpoint at baseURL
// (empty means the service default). The http client is injected so tests
// can point it at a local server.
func NewExtractor(apiKey, baseURL, model string, httpClient *http.Client) *Extractor {
	// a failed attempt is terminal for this report, no retries
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (e *Extractor) ExtractReport(ctx context.Context, clientReport string) (_ Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "report.extract")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: e.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(clientReport),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return Report{}, faults.NewStatus(faults.KindRequest, "completions", apiErr.StatusCode)
		}
		return Report{}, faults.FromTransport("completions", err)
	}

	if len(completion.Choices) == 0 {
		return Report{}, faults.New(faults.KindParse, "completions", errors.New("no choices in response"))
	}

	content := NormalizeBooleans(completion.Choices[0].Message.Content)

	if !json.Valid([]byte(content)) {
		// one repair attempt: strip a single layer of backtick fencing;
		// still broken means this attempt is done, no re-prompt
		content = strings.Trim(content, "`")
		if !json.Valid([]byte(content)) {
			log.Errorf("completion content not parsable as JSON: %q", completion.Choices[0].Message.Content)
			return Report{}, faults.New(faults.KindParse, "completions", errors.New("content is not valid JSON"))
		}
	}

	rep, err := Parse([]byte(content))
	if err != nil {
		log.Errorf("completion content failed report validation: %s", err)
		return Report{}, faults.New(faults.KindSchema, "completions", fmt.Errorf("validate report: %w", err))
	}

	return rep, nil
}

// NormalizeBooleans rewrites Python-style boolean literals to JSON ones.
// Idempotent: already-lowercase content comes back unchanged.
func NormalizeBooleans(s string) string {
	s = strings.ReplaceAll(s, "True", "true")
	s = strings.ReplaceAll(s, "False", "false")
	return s
}
