package main

import (
	"cryptometrics/cmd"
	"cryptometrics/internal/logger"
)

func main() {
	log := logger.New()

	var deps *cliDeps
	loadDeps := func() (*cliDeps, error) {
		apiHandler, _, err := cmd.InitializeDependencies()
		if err != nil {
			return nil, err
		}
		deps = &cliDeps{
			Db:             apiHandler.Db,
			MetricsService: apiHandler.MetricsService,
		}
		return deps, nil
	}

	err := newRootCmd(loadDeps).Execute()
	if deps != nil {
		deps.Db.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
