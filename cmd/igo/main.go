package main

import (
	"os"

	"github.com/igosistemas/igo/internal/application/auth"
	"github.com/igosistemas/igo/internal/application/inventory"
	"github.com/igosistemas/igo/internal/application/orders"
	"github.com/igosistemas/igo/internal/application/reports"
	"github.com/igosistemas/igo/internal/application/usecase"
	"github.com/igosistemas/igo/internal/infrastructure/jsonfile"
	"github.com/igosistemas/igo/internal/infrastructure/pdf"
	"github.com/igosistemas/igo/internal/interfaces/cli"
	"github.com/igosistemas/igo/internal/store"
	"github.com/igosistemas/igo/pkg/config"
	"github.com/igosistemas/igo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("error cargando configuración: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Msg("iniciando")

	st, err := store.Open(jsonfile.New(cfg.Data.File), log)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Data.File).Msg("no se pudo abrir el documento de datos")
	}

	inventoryUC := inventory.NewUseCase(st, log)
	authUC := auth.NewAuthUseCase(st, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	}, log)

	app := cli.New(cli.Options{
		Auth:      authUC,
		Users:     usecase.NewUserUseCase(st),
		Products:  usecase.NewProductUseCase(st, inventoryUC),
		Suppliers: usecase.NewSupplierUseCase(st),
		Customers: usecase.NewCustomerUseCase(st),
		Employees: usecase.NewEmployeeUseCase(st),
		Inventory: inventoryUC,
		Orders:    orders.NewUseCase(st, log),
		Reports:   reports.NewUseCase(st, pdf.NewMarotoStockReportGenerator()),

		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		ExpiryWindowDays:  cfg.Inventory.ExpiryWindowDays,
		ReportDir:         cfg.Report.Dir,

		In:  os.Stdin,
		Out: os.Stdout,
		Log: log,
	})

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("error en la interfaz interactiva")
	}
	log.Info().Msg("sesión finalizada")
}
