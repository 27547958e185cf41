package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/auth"
	"github.com/zhouzirui/folio/backend/internal/config"
	"github.com/zhouzirui/folio/backend/internal/handler"
	"github.com/zhouzirui/folio/backend/internal/logging"
	"github.com/zhouzirui/folio/backend/internal/service/chat"
	"github.com/zhouzirui/folio/backend/internal/service/contact"
	"github.com/zhouzirui/folio/backend/internal/service/content"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	var verifier *auth.Verifier
	if cfg.Auth.Enabled() {
		verifier, err = auth.NewVerifier(cfg.Auth.SigningKey, cfg.Auth.Issuer)
		if err != nil {
			logger.Fatal("failed to build token verifier", zap.Error(err))
		}
	} else {
		logger.Info("AUTH_JWT_SECRET 未配置，所有访客按 guest 身份处理")
	}

	source, err := content.NewSource(cfg.Content, logger)
	if err != nil {
		logger.Fatal("failed to initialize content source", zap.Error(err))
	}
	contentSvc := content.NewService(source, logger.Named("content"))

	recorders := []contact.Recorder{contact.NewLogRecorder(logger.Named("contact"))}
	if cfg.Database.Enabled() {
		db, err := openDatabase(ctx, cfg.Database.URL)
		if err != nil {
			logger.Fatal("failed to open contact database", zap.Error(err))
		}
		defer db.Close()

		pg := contact.NewPostgresRecorder(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to prepare contact schema", zap.Error(err))
		}
		recorders = append(recorders, pg)
		logger.Info("contact submissions will be stored in postgres")
	}
	contactSvc := contact.NewService(logger.Named("contact"), recorders...)

	chatSvc := chat.NewService(cfg.Chat, logger.Named("chat"))
	if chatSvc.MockMode() {
		logger.Warn("OPENAI_API_KEY 或 WORKFLOW_ID 未配置，聊天会话将返回 mock 凭证")
	}

	router := handler.NewRouter(handler.Dependencies{
		Chat:           chatSvc,
		Contact:        contactSvc,
		Content:        contentSvc,
		Verifier:       verifier,
		CookieName:     cfg.Auth.CookieName,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})

	startServer(ctx, cfg.Server, router, logger)
}

func openDatabase(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("portfolio backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
