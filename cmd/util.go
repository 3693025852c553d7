package cmd

import (
	"cryptometrics/api"
	"cryptometrics/internal/repository"
	"cryptometrics/internal/service"
	"cryptometrics/internal/util"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	cryptoFeaturesRepository := repository.NewCryptoFeaturesRepository()
	metricsService := service.NewMetricsService(cryptoFeaturesRepository)

	apiHandler := &api.ApiHandler{
		Db:             dbConn,
		MetricsService: metricsService,
	}

	return apiHandler, secrets, nil
}
