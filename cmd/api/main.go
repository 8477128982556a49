package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barber-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-agenda/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/routes"
	"github.com/BruksfildServices01/barber-agenda/internal/scanlock"
	"github.com/BruksfildServices01/barber-agenda/internal/usecase/reminder"
)

func main() {

	// .env local; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// ------------------------------
	// Notificador (webhook ou noop)
	// ------------------------------
	var notifier notify.Notifier
	if cfg.NotifierURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.NotifierURL, cfg.NotifierToken)
	} else {
		log.Println("NOTIFIER_URL not set, using noop notifier")
		notifier = notify.NewNoopNotifier()
	}
	notifyDispatcher := notify.NewDispatcher(notifier)

	// ------------------------------
	// Varredura de lembretes
	// ------------------------------
	// com Redis o estado "varrendo" vale para todas as instâncias;
	// sem Redis assumimos processo único
	var lock scanlock.Lock
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		lock = scanlock.NewRedisLock(rdb, "reminder:scan", cfg.ScanLockTTL)
	} else {
		log.Println("REDIS_ADDR not set, using in-process scan lock")
		lock = scanlock.NewLocalLock()
	}

	scanner := reminder.NewScanner(
		infraRepo.NewReminderGormRepository(db),
		notifier,
		lock,
		[]reminder.Window{
			{Name: "day_before", Lookahead: cfg.ReminderAheadWindow},
			{Name: "soon", Lookahead: cfg.ReminderSoonWindow},
		},
	)

	runner := reminder.NewRunner(scanner, cfg.ReminderInterval)
	go runner.Run(context.Background())

	// ------------------------------
	// HTTP
	// ------------------------------
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifyDispatcher, scanner)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
