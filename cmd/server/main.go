package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"agrosense/config"
	"agrosense/database"
	"agrosense/pkg/agronomy"
	"agrosense/pkg/breaker"
	"agrosense/pkg/httpx"
	"agrosense/pkg/logging"
	"agrosense/pkg/middleware"
	"agrosense/pkg/rotation"
	"agrosense/pkg/weather"
	"agrosense/router"

	// Auth
	authCtrlImp "agrosense/pkg/auth/controllerImp"
	authRepoImp "agrosense/pkg/auth/repositoryImp"
	authSvcImp "agrosense/pkg/auth/serviceImp"

	// District
	districtCtrlImp "agrosense/pkg/district/controllerImp"
	districtRepoImp "agrosense/pkg/district/repositoryImp"
	districtSvcImp "agrosense/pkg/district/serviceImp"

	// Plan
	planCtrlImp "agrosense/pkg/plan/controllerImp"
	planSvcImp "agrosense/pkg/plan/serviceImp"

	// Predict
	"agrosense/pkg/predict/classifier"
	predictCtrlImp "agrosense/pkg/predict/controllerImp"
	predictSvcImp "agrosense/pkg/predict/serviceImp"

	// Profit
	profitCtrlImp "agrosense/pkg/profit/controllerImp"
	profitRepoImp "agrosense/pkg/profit/repositoryImp"
	profitSvcImp "agrosense/pkg/profit/serviceImp"

	// Health
	healthCtrlImp "agrosense/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg, envErr := config.Load()
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Warn("could not parse .env, using process environment", zap.Error(envErr))
	}

	e, closeDB, err := buildServer(cfg, log)
	if err != nil {
		log.Fatal("startup", zap.Error(err))
	}
	defer closeDB()

	// 2) Start, stop on SIGINT/SIGTERM
	go func() {
		log.Info("listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

// buildServer wires every component and returns a ready echo instance plus a db closer.
func buildServer(cfg config.AppConfig, log *zap.Logger) (*echo.Echo, func(), error) {
	// DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = httpx.JSONSerializer{}
	e.Validator = httpx.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Use(
		middleware.RequestID(),
		middleware.RequestLog(log),
		middleware.Metrics(),
		echoMiddleware.Recover(),
		middleware.CORS(cfg.CORSOrigins),
	)

	// Reference tables
	agro := agronomy.DefaultTables()
	resolver := rotation.NewResolver(rotation.DefaultTables())

	// Datasets: warm up before serving, a missing file only degrades its endpoints
	dsRepo := districtRepoImp.New(cfg.DistrictDataPath, log)
	if t, err := dsRepo.Load(context.Background()); err != nil {
		log.Warn("district dataset unavailable", zap.String("path", cfg.DistrictDataPath), zap.Error(err))
	} else {
		log.Info("district dataset loaded", zap.Int("rows", t.Len()))
	}
	priceRepo := profitRepoImp.New(cfg.PriceCostPath, log)

	// Upstreams: weather + optional classifier, each behind a breaker
	wx := weather.NewOWMClient(cfg.OpenWeatherAPIKey, "", cfg.WeatherTimeout,
		breaker.New("openweather", cfg.BreakerFailures, cfg.BreakerOpenFor, log), log)
	features, err := classifier.LoadFeatureOrder(cfg.FeatureOrderPath)
	if err != nil {
		log.Warn("classifier feature order unreadable", zap.Error(err))
	}
	clf := classifier.NewHTTP(cfg.ClassifierEndpoint, features, cfg.ClassifierTimeout,
		breaker.New("classifier", cfg.BreakerFailures, cfg.BreakerOpenFor, log), log)
	if clf == nil {
		log.Info("no classifier configured, predictions use rules")
	}

	// Services + controllers
	predictCtrl := predictCtrlImp.New(predictSvcImp.NewPredictService(clf, wx, log))
	planCtrl := planCtrlImp.NewPlanCtrl(planSvcImp.NewPlanService(resolver, agro, planSvcImp.DefaultTemplates(), log))
	districtCtrl := districtCtrlImp.New(districtSvcImp.NewDistrictService(dsRepo, agro, filepath.Base(cfg.DistrictDataPath), log))
	profitCtrl := profitCtrlImp.New(profitSvcImp.NewProfitService(dsRepo, priceRepo, log))
	authCtrl := authCtrlImp.NewAuthController(authSvcImp.NewAuthService(authRepoImp.New(db), 0, log))
	hCtrl := healthCtrlImp.NewHealthCtrl(db, dsRepo)

	// Router
	return router.New(e, predictCtrl, planCtrl, districtCtrl, profitCtrl, authCtrl, hCtrl), closeDB, nil
}
