package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/goroutine"
	"github.com/opepen-graveyard/goapi/base/log"
	bValidator "github.com/opepen-graveyard/goapi/base/validator"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	mmiddleware "github.com/opepen-graveyard/goapi/middleware"
	"github.com/opepen-graveyard/goapi/service/alchemy"
	"github.com/opepen-graveyard/goapi/service/etherscan"
	burn_delivery "github.com/opepen-graveyard/goapi/stores/burn/delivery/http"
	burn_usecase "github.com/opepen-graveyard/goapi/stores/burn/usecase"
	gallery_delivery "github.com/opepen-graveyard/goapi/stores/gallery/delivery/http"
	gallery_repository "github.com/opepen-graveyard/goapi/stores/gallery/repository"
	gallery_usecase "github.com/opepen-graveyard/goapi/stores/gallery/usecase"
	hc_delivery "github.com/opepen-graveyard/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/opepen-graveyard/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/opepen-graveyard/goapi/stores/healthcheck/usecase"
	metadata_delivery "github.com/opepen-graveyard/goapi/stores/metadata/delivery/http"
	metadata_usecase "github.com/opepen-graveyard/goapi/stores/metadata/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/opepen-graveyard/goapi/app/api/docs"
)

//	@title			Opepen Graveyard API
//	@version		1.0
//	@description	Opepen sent to the burn address, with their metadata.

// main
func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	configPath := flags.String("config", defaultConfigPath, "path of the yaml config file")
	flags.Parse(os.Args[1:])

	cfg, err := loadConfig(viper.GetViper(), *configPath)
	if err != nil {
		panic(err)
	}
	log.SetDebug(cfg.Debug)
	defer log.Sync()
	if cfg.Debug {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init upstream clients, a missing api key leaves the client unavailable
	context.Info("init etherscan")
	etherscanClient, err := etherscan.NewClient(&etherscan.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    cfg.Http.Timeout,
		Apikey:     cfg.Etherscan.ApiKey,
		Endpoint:   cfg.Etherscan.Endpoint,
	})
	if err != nil {
		context.WithField("err", err).Warn("etherscan client unavailable")
		etherscanClient = etherscan.NewUnavailableClient(err)
	}

	context.Info("init alchemy")
	alchemyClient, err := alchemy.NewClient(&alchemy.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    cfg.Http.Timeout,
		Apikey:     cfg.Alchemy.ApiKey,
		Endpoint:   cfg.Alchemy.Endpoint,
	})
	if err != nil {
		context.WithField("err", err).Warn("alchemy client unavailable")
		alchemyClient = alchemy.NewUnavailableClient(err)
	}

	apiMiddlewares := []echo.MiddlewareFunc{}
	if cfg.Cache.Ttl > 0 {
		context.WithField("ttl", cfg.Cache.Ttl).Info("init response cache")
		mmiddleware.SetupCache(cfg.Cache.SizeMB)
		apiMiddlewares = append(apiMiddlewares, mmiddleware.CacheHttp(cfg.Cache.Ttl))
	}

	contract := domain.Address(cfg.Opepen.Contract).ToLower()
	burn := burn_usecase.NewBurnUseCase(&burn_usecase.BurnUseCaseCfg{
		Etherscan: etherscanClient,
		Contract:  contract,
	})
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		Alchemy:    alchemyClient,
		Contract:   contract,
		BatchSize:  cfg.Metadata.BatchSize,
		BatchDelay: cfg.Metadata.BatchDelay,
	})

	var galleryRepo opepen.GalleryRepo
	switch cfg.Gallery.Source {
	case GallerySourceHttp:
		galleryRepo = gallery_repository.NewHttpRepo(&gallery_repository.HttpRepoCfg{
			HttpClient: http.Client{},
			Timeout:    cfg.Http.Timeout,
			BaseUrl:    cfg.GalleryBaseUrl(),
		})
	default:
		galleryRepo = gallery_repository.NewLocalRepo(burn, metadata)
	}
	gallery := gallery_usecase.NewGalleryUseCase(&gallery_usecase.GalleryUseCaseCfg{
		Repo:   galleryRepo,
		Supply: cfg.Opepen.Supply,
	})

	hc := hc_usecase.New(hc_repo.New(nil), map[string]bool{
		"etherscan": cfg.Etherscan.ApiKey != "",
		"alchemy":   cfg.Alchemy.ApiKey != "",
	})

	hc_delivery.New(e, hc)
	burn_delivery.New(e, burn, apiMiddlewares...)
	metadata_delivery.New(e, metadata, apiMiddlewares...)
	gallery_delivery.New(e, gallery)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	stopped := goroutine.RecoverableGo(func() {
		if err := e.Start(cfg.Server.Address); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case ev, ok := <-stopped:
		if ok {
			log.Log().WithField("panic", ev.Panic).Error("server goroutine panicked")
		} else {
			log.Log().Info("server stopped")
		}
	}

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
