package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rmello/shopfront/internal/config"
	"github.com/rmello/shopfront/internal/store"
	"github.com/rmello/shopfront/internal/stubsrv"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}
	stubsrv.SetLogger(log)

	var catalogStore store.CatalogStore
	if cfg.DatabaseURL != "" {
		db, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("could not connect to database")
		}
		defer db.Close()
		catalogStore = store.NewPostgresCatalogStore(db)
		log.Info("catalog store: postgres")
	} else {
		catalogStore = store.NewInMemoryCatalogStore()
		log.Info("catalog store: in-memory")
	}
	if err := store.Seed(catalogStore); err != nil {
		log.WithError(err).Fatal("could not seed catalog")
	}

	var activityStore store.ActivityStore
	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Fatal("could not connect to Redis")
		}
		defer rdb.Close()
		activityStore = store.NewRedisActivityStore(rdb, ctx)
		log.Info("activity store: redis")
	} else {
		activityStore = store.NewInMemoryActivityStore()
		log.Info("activity store: in-memory")
	}

	stubsrv.SetCatalogStore(catalogStore)
	stubsrv.SetOrderStore(store.NewInMemoryOrderStore())
	stubsrv.SetReviewStore(store.NewInMemoryReviewStore())
	stubsrv.SetActivityStore(activityStore)

	go stubsrv.StartVisitorCleanupLoop()

	log.WithField("addr", cfg.Addr).Info("stub inventory API listening")
	if err := http.ListenAndServe(cfg.Addr, stubsrv.NewRouter()); err != nil {
		log.Fatal(err)
	}
}
