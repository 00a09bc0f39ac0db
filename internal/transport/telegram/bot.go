// Package telegram connects the attendance event handler to a Telegram bot
// through long polling.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/intent"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BotAPI is the subset of *tgbotapi.BotAPI the server uses.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Server struct {
	api         BotAPI
	handler     app.EventHandler
	vocab       intent.Vocabulary
	logger      *zap.Logger
	workers     int
	pollTimeout int
}

type Option func(*Server)

func WithVocabulary(v intent.Vocabulary) Option {
	return func(s *Server) { s.vocab = v }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithWorkers sets how many worker queues handle updates concurrently.
func WithWorkers(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithPollTimeout sets the long-poll timeout in seconds.
func WithPollTimeout(sec int) Option {
	return func(s *Server) { s.pollTimeout = sec }
}

func NewServer(api BotAPI, handler app.EventHandler, opts ...Option) *Server {
	s := &Server{
		api:         api,
		handler:     handler,
		vocab:       intent.DefaultVocabulary(),
		logger:      zap.NewNop(),
		workers:     4,
		pollTimeout: 60,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// queueSize is how many updates a worker queue holds before polling waits.
const queueSize = 64

type queuedUpdate struct {
	id  int
	msg *tgbotapi.Message
}

// Run polls for updates until ctx is cancelled or the update channel
// closes, then waits for queued updates to finish. Each sender is pinned to
// one worker, so a user's messages are handled in the order they were sent.
func (s *Server) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = s.pollTimeout
	updates := s.api.GetUpdatesChan(u)

	// Queued replies still go out after shutdown begins.
	handleCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	queues := make([]chan queuedUpdate, s.workers)
	for i := range queues {
		q := make(chan queuedUpdate, queueSize)
		queues[i] = q
		g.Go(func() error {
			for item := range q {
				s.handleMessage(handleCtx, item.id, item.msg)
			}
			return nil
		})
	}

	s.logger.Info("bot started", zap.Int("workers", s.workers))
	s.distribute(ctx, updates, queues)

	for _, q := range queues {
		close(q)
	}
	err := g.Wait()
	s.logger.Info("bot stopped")
	return err
}

// distribute routes updates to worker queues until ctx is cancelled or the
// update channel closes.
func (s *Server) distribute(ctx context.Context, updates tgbotapi.UpdatesChannel, queues []chan queuedUpdate) {
	for {
		select {
		case <-ctx.Done():
			s.api.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			if upd.Message == nil {
				continue
			}
			select {
			case queues[queueIndex(upd.Message, len(queues))] <- queuedUpdate{id: upd.UpdateID, msg: upd.Message}:
			case <-ctx.Done():
				s.api.StopReceivingUpdates()
				return
			}
		}
	}
}

func queueIndex(msg *tgbotapi.Message, n int) int {
	if msg.From == nil {
		return 0
	}
	return int(uint64(msg.From.ID) % uint64(n))
}

func (s *Server) handleMessage(ctx context.Context, updateID int, msg *tgbotapi.Message) {
	log := s.logger.With(zap.Int("update_id", updateID))

	ev, err := s.eventFromMessage(msg)
	if err != nil {
		if errors.Is(err, intent.ErrInvalidArgument) {
			s.reply(log, msg.Chat.ID, invalidArgumentText(msg.Command()))
			return
		}
		log.Debug("ignoring message", zap.Error(err))
		return
	}

	res, err := s.handler.Handle(ctx, ev)
	if err != nil {
		log.Error("handling event failed",
			zap.Int64("user_id", ev.UserID),
			zap.String("kind", string(ev.Kind)),
			zap.Error(err),
		)
		s.reply(log, msg.Chat.ID, storageFailureText)
		return
	}
	s.reply(log, msg.Chat.ID, Render(res))
}

func (s *Server) reply(log *zap.Logger, chatID int64, text string) {
	if _, err := s.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Warn("sending reply failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

var errNotActionable = errors.New("message carries no text or sender")

// eventFromMessage classifies a message. Commands go through
// intent.ParseCommand, unknown commands and free text through the
// vocabulary.
func (s *Server) eventFromMessage(msg *tgbotapi.Message) (app.Event, error) {
	if msg.From == nil || msg.Chat == nil || strings.TrimSpace(msg.Text) == "" {
		return app.Event{}, errNotActionable
	}

	ev := app.Event{
		UserID:   msg.From.ID,
		UserName: displayName(msg.From),
	}
	// Replayed backlog keeps the time the user sent the message.
	if msg.Date != 0 {
		ev.Now = msg.Time()
	}

	if msg.IsCommand() {
		cmd, err := intent.ParseCommand(msg.Command(), msg.CommandArguments())
		switch {
		case err == nil:
			ev.Kind = cmd.Kind
			ev.Range = cmd.Range
			return ev, nil
		case errors.Is(err, intent.ErrUnknownCommand):
			ev.Kind = app.EventUnrecognized
			return ev, nil
		default:
			return app.Event{}, fmt.Errorf("parsing /%s: %w", msg.Command(), err)
		}
	}

	switch intent.Classify(msg.Text, s.vocab) {
	case intent.CheckIn:
		ev.Kind = app.EventCheckIn
	case intent.CheckOut:
		ev.Kind = app.EventCheckOut
	default:
		ev.Kind = app.EventUnrecognized
	}
	return ev, nil
}

func displayName(u *tgbotapi.User) string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
