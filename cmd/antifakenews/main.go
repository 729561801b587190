package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/config"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/init/db"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/events"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/i18n"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/importer"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/metrics"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/mockdata"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/progress"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/session"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/storage"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/pkg/handlers"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	ConfigPath  = "./config/"
	serviceName = "antifakenews"
	version     = "1.0.0"
)

// openStorage picks the snapshot backend named by storage.driver. The
// returned func releases the underlying connection.
func openStorage(logger *logrus.Entry) (storage.Storage, func(), error) {
	driver := config.C.Storage.Driver

	switch driver {
	case "", "memory":
		return storage.NewMemoryRepo(), func() {}, nil
	case "file":
		repo, err := storage.NewFileRepo(config.C.Storage.FilePath)
		return repo, func() {}, err
	case "mongodb":
		mongoDB, err := db.InitMongo()
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := mongoDB.Client().Disconnect(context.TODO()); err != nil {
				logger.Error(err)
			}
		}
		return storage.NewMongoRepo(mongoDB), closeFn, nil
	case "redis":
		client, err := db.InitRedis()
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Error(err)
			}
		}
		return storage.NewRedisRepo(client, config.C.Redis.Prefix), closeFn, nil
	}

	dialect, err := storage.DialectByName(driver)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", storage.ErrBadDriver, driver)
	}

	var openDB func() (*sql.DB, error)
	switch driver {
	case "mysql":
		openDB = db.InitMySQL
	case "sqlite3":
		openDB = db.InitSQLite
	case "postgres":
		openDB = db.InitPostgres
	}

	sqlDB, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error(err)
		}
	}

	repo := storage.NewSQLRepo(sqlDB, dialect)
	if err := repo.EnsureSchema(); err != nil {
		closeFn()
		return nil, nil, err
	}

	return repo, closeFn, nil
}

func main() {
	contextLogger := logrus.WithFields(logrus.Fields{
		"logger": "LOGRUS",
	})

	err := config.LoadConfig(ConfigPath)
	if err != nil {
		contextLogger.Fatalf("read config failed: %v\n", err)
		return
	}

	if level, err := logrus.ParseLevel(config.C.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	st, closeStorage, err := openStorage(contextLogger)
	if err != nil {
		contextLogger.Fatal(err)
		return
	}
	defer closeStorage()

	seed := config.C.Mock.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator := mockdata.New(rand.NewSource(seed))

	opts := store.Options{
		SeedCount:    config.C.Mock.SeedCount,
		PrimeOnStart: config.C.Mock.PrimeOnStart,
		ResetOnStart: config.C.Mock.ResetOnStart,
		AutoImport:   config.C.App.AutoImport,
	}
	if config.C.App.ImportFile != "" {
		opts.Importer = importer.NewFileImporter(config.C.App.ImportFile, contextLogger)
	}
	newsStore := store.New(st, generator, contextLogger, opts)

	metrics.Init(serviceName, version, config.C.Storage.Driver)
	newsStore.Subscribe(metrics.Listener(newsStore))

	if config.C.NATS.URL != "" {
		publisher, err := events.NewNATSPublisher(&events.NATSConfig{
			URL:     config.C.NATS.URL,
			Subject: config.C.NATS.Subject,
		}, contextLogger)
		if err != nil {
			contextLogger.Warn("nats unavailable, events will not be published: ", err)
		} else {
			defer publisher.Close()
			newsStore.Subscribe(publisher.Notify)
		}
	}

	translator := i18n.NewTranslator(st, contextLogger, config.C.App.Language)
	translator.Reset()

	generatorJWT := session.NewJWTGenerator(config.C.App.SecretKey)
	sessionRepo := session.NewJWTRepo(generatorJWT, config.C.App.SecretKey)
	tracker := progress.NewTracker()

	newsHandler := handlers.NewNewsHandler(newsStore, translator, contextLogger)
	commentHandler := handlers.NewCommentHandler(newsStore, contextLogger)
	statisticsHandler := handlers.NewStatisticsHandler(newsStore, translator, contextLogger)
	adminHandler := handlers.NewAdminHandler(newsStore, translator, contextLogger)
	identityHandler := handlers.NewIdentityHandler(sessionRepo, contextLogger)
	languageHandler := handlers.NewLanguageHandler(translator, contextLogger)
	progressHandler := handlers.NewProgressHandler(tracker, contextLogger)
	authenticationMiddleware := middleware.NewAuthenticationMiddleware(sessionRepo, contextLogger)

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authenticationMiddleware.Identify)
	api.HandleFunc("/news", newsHandler.GetList).Methods("GET")
	api.HandleFunc("/news", newsHandler.Add).Methods("POST")
	api.HandleFunc("/news", newsHandler.RemoveAll).Methods("DELETE")
	api.HandleFunc("/news/import", newsHandler.Import).Methods("POST")
	api.HandleFunc("/news/imported", newsHandler.ClearImported).Methods("DELETE")
	api.HandleFunc("/news/{id}", newsHandler.Get).Methods("GET")
	api.HandleFunc("/news/{id}/votes", newsHandler.GetVotes).Methods("GET")
	api.HandleFunc("/news/{id}/votes", newsHandler.AddVote).Methods("POST")
	api.HandleFunc("/news/{id}/comments", commentHandler.GetByNews).Methods("GET")
	api.HandleFunc("/news/{id}/like", newsHandler.Like).Methods("POST")
	api.HandleFunc("/news/{id}/like", newsHandler.Unlike).Methods("DELETE")
	api.HandleFunc("/comments/{comment_id}/likes", commentHandler.GetLikes).Methods("GET")
	api.HandleFunc("/statistics", statisticsHandler.Get).Methods("GET")
	api.HandleFunc("/admin/reset", adminHandler.Reset).Methods("POST")
	api.HandleFunc("/admin/boost", adminHandler.Boost).Methods("POST")
	api.HandleFunc("/admin/randomize", adminHandler.Randomize).Methods("POST")
	api.HandleFunc("/identity", identityHandler.Issue).Methods("POST")
	api.HandleFunc("/language", languageHandler.Get).Methods("GET")
	api.HandleFunc("/language", languageHandler.Set).Methods("PUT")
	api.HandleFunc("/progress", progressHandler.Get).Methods("GET")

	s := api.PathPrefix("/comments").Subrouter()
	s.HandleFunc("/{comment_id}/like", commentHandler.Like).Methods("POST")
	s.HandleFunc("/{comment_id}/like", commentHandler.Unlike).Methods("DELETE")
	s.Use(authenticationMiddleware.Authenticate)

	r.Use(middleware.Metrics)

	h := middleware.Progress(tracker, r)
	h = middleware.CheckContentType(contextLogger, h)
	h = middleware.AccessLog(contextLogger, h)

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", config.C.App.Port),
		Handler: h,
	}
	contextLogger.WithFields(logrus.Fields{
		"port":    config.C.App.Port,
		"storage": config.C.Storage.Driver,
		"news":    len(newsStore.News()),
	}).Info("starting server")
	if err := server.ListenAndServe(); err != nil {
		contextLogger.Fatalf("unable to start server: %v\n", err)
	}
}
