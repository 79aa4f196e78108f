package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lkupryaha/trenerbot/internal/faults"
	"github.com/lkupryaha/trenerbot/internal/report"
	"github.com/lkupryaha/trenerbot/internal/telemetry/metrics"
	"github.com/lkupryaha/trenerbot/internal/telemetry/tracing"
	"github.com/lkupryaha/trenerbot/internal/trainerapi"
	"github.com/lkupryaha/trenerbot/internal/training"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=mocks_test.go -package=bot

type trainerAPI interface {
	CurrentPlans(ctx context.Context, tgID int64) ([]report.PlanMetadata, error)
	Trainings(ctx context.Context, tgID int64, year, week int) ([]training.Record, error)
	SubmitReport(ctx context.Context, rwm report.ReportWithMetadata) error
	Allowed(ctx context.Context, apiKey string) (bool, error)
}

type reportExtractor interface {
	ExtractReport(ctx context.Context, clientReport string) (report.Report, error)
}

// Sender is the one-way door to the chat transport.
type Sender interface {
	Send(chatID int64, text string) error
	SendMenu(chatID int64) error
}

// Handler owns the conversation outcomes: every operation ends with the menu
// re-sent, and every failure is converted to a user-facing message here.
// Nothing below this type ever reaches the transport loop as an error.
type Handler struct {
	api       trainerAPI
	extractor reportExtractor
	sender    Sender
	metrics   *metrics.Manager

	maxMessageLength int
	now              func() time.Time
}

func NewHandler(
	api trainerAPI,
	extractor reportExtractor,
	sender Sender,
	metricsManager *metrics.Manager,
	maxMessageLength int,
) *Handler {
	return &Handler{
		api:              api,
		extractor:        extractor,
		sender:           sender,
		metrics:          metricsManager,
		maxMessageLength: maxMessageLength,
		now:              time.Now,
	}
}

// HandleTrainingPlan renders and sends the plan for the current ISO week.
func (h *Handler) HandleTrainingPlan(ctx context.Context, chatID int64) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.handleTrainingPlan")
	defer span.End()

	defer h.sendMenu(chatID)

	year, week := h.now().ISOWeek()
	log.Infof("chat %d requested training plan for week %d year %d", chatID, week, year)

	records, err := h.api.Trainings(ctx, chatID, year, week)
	if err != nil {
		h.sendFailure(chatID, "training_plan", err)
		return
	}

	if len(records) == 0 {
		log.Warnf("no training plans found for chat %d, week %d", chatID, week)
		h.send(chatID, fmt.Sprintf(msgNoPersonalTraining, week))
		h.metrics.CounterUpdates.WithLabelValues("training_plan", "no_plan").Inc()
		return
	}

	text, err := training.RenderWeek(records)
	if err != nil {
		h.sendFailure(chatID, "training_plan", err)
		return
	}

	for _, chunk := range training.Chunks(text, h.maxMessageLength) {
		h.send(chatID, chunk)
	}

	h.metrics.CounterPlansServed.Inc()
	h.metrics.CounterUpdates.WithLabelValues("training_plan", "ok").Inc()
}

// HandleReport runs the report pipeline: fetch current-plan metadata, extract
// a structured report from the free text, submit, and tell the user how it
// went. The 404 (no plan) and 409 (already reported) backend answers are
// terminal outcomes with their own messages, never errors and never retried.
func (h *Handler) HandleReport(ctx context.Context, chatID int64, clientReport string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.handleReport")
	defer span.End()

	defer h.sendMenu(chatID)

	plans, err := h.api.CurrentPlans(ctx, chatID)
	if err != nil {
		if errors.Is(err, trainerapi.ErrNoCurrentPlan) {
			h.send(chatID, msgTrainFirst)
			h.metrics.CounterUpdates.WithLabelValues("report", "no_plan").Inc()
			return
		}
		h.sendFailure(chatID, "report", err)
		return
	}
	if len(plans) == 0 {
		h.send(chatID, msgTrainFirst)
		h.metrics.CounterUpdates.WithLabelValues("report", "no_plan").Inc()
		return
	}

	// normally a single plan; the backend models it as a resource list
	for _, plan := range plans {
		rep, err := h.extractor.ExtractReport(ctx, clientReport)
		if err != nil {
			h.sendFailure(chatID, "report", err)
			return
		}

		rwm := report.NewReportWithMetadata(rep, plan)
		if err := h.api.SubmitReport(ctx, rwm); err != nil {
			if errors.Is(err, trainerapi.ErrReportExists) {
				log.Infof("report for chat %d week %d year %d already exists", chatID, plan.Week, plan.Year)
				h.send(chatID, fmt.Sprintf(msgReportExists, plan.Week, plan.Year))
				h.metrics.CounterReportConflicts.Inc()
				h.metrics.CounterUpdates.WithLabelValues("report", "conflict").Inc()
				return
			}
			h.sendFailure(chatID, "report", err)
			return
		}

		log.Infof("report for chat %d submitted, week %d year %d", chatID, plan.Week, plan.Year)
		h.send(chatID, fmt.Sprintf(msgReportAccepted, plan.Week, plan.Year))
		h.metrics.CounterReportsSubmitted.Inc()
	}

	h.metrics.CounterUpdates.WithLabelValues("report", "ok").Inc()
}

// HandleAuthorize checks a client token against the backend and reports the
// verdict. On success onAuthorized rebinds the process credential.
func (h *Handler) HandleAuthorize(ctx context.Context, chatID int64, token string, onAuthorized func(token string)) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bot.handleAuthorize")
	defer span.End()

	defer h.sendMenu(chatID)

	allowed, err := h.api.Allowed(ctx, token)
	switch {
	case errors.Is(err, trainerapi.ErrAccessDenied):
		h.send(chatID, msgNoAccess)
	case errors.Is(err, trainerapi.ErrUnknownToken):
		log.Warnf("chat %d entered an unknown token", chatID)
		h.send(chatID, msgNoSuchToken)
	case err != nil:
		h.sendFailure(chatID, "authorize", err)
	case !allowed:
		h.send(chatID, msgTokenExpired)
	default:
		log.Infof("chat %d authorized", chatID)
		if onAuthorized != nil {
			onAuthorized(token)
		}
		h.send(chatID, msgTokenOK)
	}
}

// HandleStart greets the user and shows the menu.
func (h *Handler) HandleStart(chatID int64, firstName string, isAdmin bool) {
	if isAdmin {
		h.send(chatID, fmt.Sprintf(msgStartAdmin, firstName))
	} else {
		h.send(chatID, msgStart)
	}
	h.sendMenu(chatID)
}

// HandleDescription sends the bot description, chunked like any other text.
func (h *Handler) HandleDescription(chatID int64) {
	for _, chunk := range training.Chunks(msgDescriptionTitle+msgDescriptionInfo, h.maxMessageLength) {
		h.send(chatID, chunk)
	}
	h.sendMenu(chatID)
}

// sendFailure maps an error to its user-facing text per the fault taxonomy
// and logs it at the level the taxonomy asks for.
func (h *Handler) sendFailure(chatID int64, handler string, err error) {
	var text, outcome string
	switch faults.KindOf(err) {
	case faults.KindTimeout:
		log.Warnf("%s for chat %d timed out: %s", handler, chatID, err)
		text, outcome = msgRequestTimeout, "timeout"
	case faults.KindParse, faults.KindSchema:
		log.Errorf("%s for chat %d got unexpected data: %s", handler, chatID, err)
		text, outcome = msgUnexpectedData, "bad_data"
	default:
		log.Errorf("%s for chat %d failed: %s", handler, chatID, err)
		text, outcome = fmt.Sprintf(msgException, err), "error"
	}
	h.send(chatID, text)
	h.metrics.CounterUpdates.WithLabelValues(handler, outcome).Inc()
}

func (h *Handler) send(chatID int64, text string) {
	if err := h.sender.Send(chatID, text); err != nil {
		log.Errorf("failed to send message to chat %d: %s", chatID, err)
	}
}

func (h *Handler) sendMenu(chatID int64) {
	if err := h.sender.SendMenu(chatID); err != nil {
		log.Errorf("failed to send menu to chat %d: %s", chatID, err)
	}
}
