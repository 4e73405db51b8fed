package main

import (
	"net/http"

	"restomenu-be/internal/config"
	"restomenu-be/internal/logger"
	"restomenu-be/internal/menu"
	"restomenu-be/internal/order"
	httptransport "restomenu-be/internal/transport/http"

	"go.uber.org/zap"
)

// startServerFunc is swapped in tests.
var startServerFunc = http.ListenAndServe

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	menuRepo := menu.NewRepository()
	menuSvc := menu.NewService(menuRepo)

	orderRepo := order.NewRepository()
	orderSvc := order.NewService(orderRepo)

	handler := httptransport.NewHandler(menuSvc, orderSvc)
	router := handler.Routes()

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
