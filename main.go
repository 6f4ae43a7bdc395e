package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/zeta/client"
	log "github.com/sirupsen/logrus"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	var configPath string
	var envPath string
	flag.StringVar(&configPath, "config", "", "path to yaml config file")
	flag.StringVar(&envPath, "env", "", "path to env file")
	flag.Parse()

	var absConfigPath string
	var err error
	if configPath != "" {
		absConfigPath, err = filepath.Abs(configPath)
		if err != nil {
			log.Fatal("[MAIN] Error getting absolute path for config file: ", err)
		}
	}

	var absEnvPath string
	if envPath != "" {
		absEnvPath, err = filepath.Abs(envPath)
		if err != nil {
			log.Fatal("[MAIN] Error getting absolute path for env file: ", err)
		}
	}

	app.InitConfig(absConfigPath, absEnvPath)
	app.InitLogger()
	app.InitDB()

	client.Client.ValidateNetwork()

	healthService := app.NewHealthService()
	serviceHealthMap := healthService.LastServiceHealths()

	var wg sync.WaitGroup

	var services []models.Service
	for serviceName, factory := range GetServiceFactories() {
		services = append(services, CreateService(&wg, serviceName, serviceHealthMap, factory))
	}

	healthService.SetServices(services)
	healthService.PostHealth()

	for _, service := range services {
		wg.Add(1)
		go service.Start()
	}

	go healthService.Start()

	log.Info("[MAIN] Server started")

	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-gracefulStop

	log.Debug("[MAIN] Caught signal: ", sig)
	log.Debug("[MAIN] Gracefully shutting down server")

	healthService.Stop()
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()

	app.DB.Disconnect()
	log.Info("[MAIN] Server stopped")
}
