package bot

import (
	"context"
	"strings"
	"sync"

	"github.com/lkupryaha/trenerbot/internal/telemetry/metrics"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const updatesTimeoutSeconds = 30

// TelegramSender sends plain texts and the inline menu through the bot API.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

func NewTelegramSender(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

func (s *TelegramSender) Send(chatID int64, text string) error {
	_, err := s.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (s *TelegramSender) SendMenu(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, msgMenuTitle)
	msg.ReplyMarkup = menuKeyboard()
	_, err := s.api.Send(msg)
	return err
}

func menuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonGetTraining, callbackGetTraining),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonSendReport, callbackSendReport),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonGetDescription, callbackGetDescription),
			tgbotapi.NewInlineKeyboardButtonData(buttonGetToken, callbackGetToken),
		),
	)
}

// pendingState marks what the next plain-text message from a chat means.
type pendingState int

const (
	pendingNone pendingState = iota
	pendingReport
	pendingToken
)

// Bot runs the long-poll loop and routes updates to the Handler. Every
// update is handled in its own goroutine; a panicking handler kills that
// one interaction, not the loop.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	sender  Sender
	metrics *metrics.Manager

	adminChatID   int64
	clientChatIDs map[int64]struct{}

	rebindAPIKey func(token string)

	mutex   sync.Mutex
	pending map[int64]pendingState
}

func NewBot(
	api *tgbotapi.BotAPI,
	handler *Handler,
	sender Sender,
	metricsManager *metrics.Manager,
	adminChatID int64,
	clientChatIDs []int64,
	rebindAPIKey func(token string),
) *Bot {
	clients := make(map[int64]struct{}, len(clientChatIDs))
	for _, id := range clientChatIDs {
		clients[id] = struct{}{}
	}
	return &Bot{
		api:           api,
		handler:       handler,
		sender:        sender,
		metrics:       metricsManager,
		adminChatID:   adminChatID,
		clientChatIDs: clients,
		rebindAPIKey:  rebindAPIKey,
		pending:       make(map[int64]pendingState),
	}
}

// Run consumes updates until ctx is canceled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updatesTimeoutSeconds
	updates := b.api.GetUpdatesChan(u)

	log.Debugf("bot %s: listening for updates", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.metrics.CounterHandleUpdatePanic.Inc()
			log.Errorf("recovered from panic while handling update: %v", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	// ack first so the button stops spinning
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Errorf("failed to ack callback %s: %s", callback.ID, err)
	}

	chatID := callback.Message.Chat.ID
	if !b.authorized(chatID) {
		b.deny(chatID)
		return
	}

	switch callback.Data {
	case callbackGetTraining:
		b.setPending(chatID, pendingNone)
		b.handler.HandleTrainingPlan(ctx, chatID)
	case callbackSendReport:
		b.setPending(chatID, pendingReport)
		b.send(chatID, msgAskReport)
	case callbackGetToken:
		b.setPending(chatID, pendingToken)
		b.send(chatID, msgAskToken)
	case callbackGetDescription:
		b.setPending(chatID, pendingNone)
		b.handler.HandleDescription(chatID)
	default:
		log.Warnf("chat %d sent unknown callback data %q", chatID, callback.Data)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.authorized(chatID) {
		b.deny(chatID)
		return
	}

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	switch b.takePending(chatID) {
	case pendingReport:
		b.handler.HandleReport(ctx, chatID, message.Text)
	case pendingToken:
		b.handler.HandleAuthorize(ctx, chatID, strings.TrimSpace(message.Text), b.rebindAPIKey)
	default:
		// free text outside a flow just gets the menu back
		if err := b.sender.SendMenu(chatID); err != nil {
			log.Errorf("failed to send menu to chat %d: %s", chatID, err)
		}
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	switch message.Command() {
	case "start":
		firstName := ""
		if message.From != nil {
			firstName = message.From.FirstName
		}
		b.handler.HandleStart(chatID, firstName, chatID == b.adminChatID)
	case "menu":
		if err := b.sender.SendMenu(chatID); err != nil {
			log.Errorf("failed to send menu to chat %d: %s", chatID, err)
		}
	default:
		log.Warnf("chat %d sent unknown command %q", chatID, message.Command())
	}
}

func (b *Bot) authorized(chatID int64) bool {
	if chatID == b.adminChatID {
		return true
	}
	_, ok := b.clientChatIDs[chatID]
	return ok
}

func (b *Bot) deny(chatID int64) {
	log.Warnf("chat %d is not allowed to use this bot", chatID)
	b.metrics.CounterUpdates.WithLabelValues("auth", "denied").Inc()
	b.send(chatID, msgAccessDenied)
}

func (b *Bot) send(chatID int64, text string) {
	if err := b.sender.Send(chatID, text); err != nil {
		log.Errorf("failed to send message to chat %d: %s", chatID, err)
	}
}

func (b *Bot) setPending(chatID int64, state pendingState) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if state == pendingNone {
		delete(b.pending, chatID)
		return
	}
	b.pending[chatID] = state
}

func (b *Bot) takePending(chatID int64) pendingState {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	state := b.pending[chatID]
	delete(b.pending, chatID)
	return state
}
