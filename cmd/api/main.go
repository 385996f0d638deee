package main

import (
	"go.uber.org/zap"

	"github.com/jwtpizza/pizza-mock/internal/config"
	"github.com/jwtpizza/pizza-mock/internal/logger"
	"github.com/jwtpizza/pizza-mock/internal/memstore"
	"github.com/jwtpizza/pizza-mock/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	store := memstore.New()
	r := routes.NewRouter(store, cfg, log)

	log.Info("mock backend running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
