package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/auth"
	"github.com/changzc22/SM-Assignment-sub000/internal/config"
	"github.com/changzc22/SM-Assignment-sub000/internal/console"
	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/fare"
	"github.com/changzc22/SM-Assignment-sub000/internal/notification"
	"github.com/changzc22/SM-Assignment-sub000/internal/repository/memory"
	"github.com/changzc22/SM-Assignment-sub000/internal/repository/postgres"
	"github.com/changzc22/SM-Assignment-sub000/internal/repository/textfile"
	"github.com/changzc22/SM-Assignment-sub000/internal/scheduler"
	"github.com/changzc22/SM-Assignment-sub000/internal/service"
	"github.com/changzc22/SM-Assignment-sub000/internal/service/ports"
	"github.com/changzc22/SM-Assignment-sub000/internal/snapshot"
	"github.com/changzc22/SM-Assignment-sub000/internal/validation"
	"github.com/jonboulle/clockwork"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/term"
)

type repos struct {
	trains   ports.TrainRepo
	bookings ports.BookingRepo
	staff    ports.StaffRepo
}

type App struct {
	cfg       *config.Config
	log       logger.Logger
	loc       *time.Location
	db        *dbpg.DB
	repos     repos
	console   *console.Console
	exporter  *snapshot.Exporter
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		cfg.App.Name,
		cfg.App.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if app.loc, err = cfg.App.Location(); err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.App.Timezone, err)
	}

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	switch a.cfg.Storage.Backend {
	case config.BackendMemory:
		a.repos = repos{
			trains:   memory.NewStore[domain.Train](),
			bookings: memory.NewStore[domain.Booking](),
			staff:    memory.NewStore[domain.Staff](),
		}
		a.log.Warn("in-memory storage selected, data is lost on exit")

	case config.BackendFile:
		dir := a.cfg.Storage.DataDir
		a.repos = repos{
			trains:   textfile.NewTrainStore(dir, a.loc, a.log),
			bookings: textfile.NewBookingStore(dir, a.log),
			staff:    textfile.NewStaffStore(dir, a.log),
		}
		a.log.Info("file storage selected", logger.String("data_dir", dir))

	case config.BackendPostgres:
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return fmt.Errorf("init db: %w", err)
		}
		a.repos = repos{
			trains:   postgres.NewTrainRepo(a.db),
			bookings: postgres.NewBookingRepo(a.db),
			staff:    postgres.NewStaffRepo(a.db),
		}

	default:
		return fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}

	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	// Один писатель на все хранилища: бронирование меняет поезда и брони вместе.
	writer := &sync.Mutex{}
	clock := clockwork.NewRealClock()
	hasher := auth.NewHasher(a.cfg.Auth.BcryptCost)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	trainService := service.NewTrainService(a.repos.trains, validation.New(), clock, writer, a.log)
	staffService := service.NewStaffService(a.repos.staff, hasher, writer, a.log)
	bookingService := service.NewBookingService(
		a.repos.bookings, a.repos.trains, a.repos.staff,
		fare.NewCalculator(a.cfg.Fare.TaxRate),
		writer, n, a.log,
	)
	guard := auth.NewGuard(
		a.repos.staff,
		hasher,
		auth.Policy{
			MaxFailedAttempts: a.cfg.Auth.MaxFailedAttempts,
			LockoutDuration:   a.cfg.Auth.LockoutDuration,
		},
		clock, writer, n, a.log,
	)

	admin, err := staffService.Bootstrap(context.Background(), a.cfg.Auth.BootstrapPassword)
	if err != nil {
		return fmt.Errorf("bootstrap staff: %w", err)
	}
	if admin != nil {
		a.log.Warn("bootstrap administrator created, change its password",
			logger.String("staff_id", admin.ID),
		)
	}

	if a.cfg.Snapshot.Interval > 0 {
		a.exporter = snapshot.NewExporter(
			a.repos.trains, a.repos.bookings, a.repos.staff,
			a.cfg.Snapshot.Dir, a.loc, writer, a.log,
		)
		a.scheduler = scheduler.New(a.exporter, a.cfg.Snapshot.Interval, a.log)
	}

	h := console.NewHandler(trainService, bookingService, staffService, guard, a.loc)
	r := console.InitRouter(
		h,
		console.Recovery(a.log),
		console.CommandLogger(a.log),
	)

	var opts []console.Option
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		opts = append(opts, console.WithSecretReader(func(prompt string) (string, error) {
			fmt.Fprint(os.Stdout, prompt)
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stdout)
			return string(b), err
		}))
	}
	a.console = console.New(r, os.Stdin, os.Stdout, a.log, opts...)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	doneCh := make(chan error, 1)
	go func() {
		doneCh <- a.console.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-doneCh:
		if err != nil {
			a.log.LogAttrs(context.Background(), logger.ErrorLevel, "console stopped",
				logger.String("error", err.Error()),
			)
		}
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	var errs []error

	if a.exporter != nil {
		stats, err := a.exporter.Export(context.Background())
		if err != nil {
			errs = append(errs, fmt.Errorf("final snapshot: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "final snapshot exported",
				logger.Int("trains", stats.Trains),
				logger.Int("bookings", stats.Bookings),
			)
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
