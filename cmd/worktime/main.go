package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/worktime/internal/cli"
	"github.com/alexanderramin/worktime/internal/config"
	"github.com/alexanderramin/worktime/internal/db"
	"github.com/alexanderramin/worktime/internal/logging"
	"github.com/alexanderramin/worktime/internal/repository"
	"github.com/alexanderramin/worktime/internal/service"
	"github.com/alexanderramin/worktime/internal/tracker"
	"github.com/alexanderramin/worktime/internal/transport/telegram"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("WORKTIME_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	records := repository.NewSQLiteWorkRecordRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	attendance := service.NewAttendanceService(records, tracker.NewMemoryTracker(), uow,
		service.WithCheckoutMatch(cfg.CheckoutMatch),
		service.WithLocation(loc),
		service.WithLogger(logger.Named("attendance")),
	)
	stats := service.NewStatsService(records, cfg.AdminID, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RecoverOpenSessions {
		n, err := attendance.Recover(ctx)
		if err != nil {
			return err
		}
		logger.Info("open sessions recovered", zap.Int("count", n))
	}

	dispatcher := service.NewDispatcher(attendance, stats,
		service.NewZapUseCaseObserver(logger.Named("usecase")))

	app := &cli.App{
		Events:     dispatcher,
		Attendance: attendance,
		Location:   loc,
		Now:        func() time.Time { return time.Now().In(loc) },
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	app.Serve = func(ctx context.Context) error {
		if cfg.BotToken == "" {
			return fmt.Errorf("bot token is not set: use bot_token or WORKTIME_BOT_TOKEN")
		}
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			return fmt.Errorf("connecting to telegram: %w", err)
		}
		logger.Info("authorized", zap.String("bot", bot.Self.UserName))

		srv := telegram.NewServer(bot, dispatcher,
			telegram.WithVocabulary(cfg.Vocabulary),
			telegram.WithWorkers(cfg.Workers),
			telegram.WithPollTimeout(cfg.PollTimeoutSec),
			telegram.WithLogger(logger.Named("telegram")),
		)
		return srv.Run(ctx)
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
