package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/config"
	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/export"
	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/filesystem"
	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/system"
	"github.com/diillson/valorant-launcher-go/internal/adapter/driving/cli"
	"github.com/diillson/valorant-launcher-go/internal/application/usecase"
	"github.com/diillson/valorant-launcher-go/pkg/console"
	"github.com/diillson/valorant-launcher-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	filesRepo := filesystem.NewProfileFileRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()
	logger := console.NewLogger("valorant-launcher", false)

	// Inicializa os casos de uso
	patchUseCase := usecase.NewPatchUseCase(filesRepo, exportRepo, consoleImpl, logger)
	launchUseCase := usecase.NewLaunchUseCase(
		patchUseCase,
		system.NewDisplayController(),
		system.NewMonitorRepository(),
		system.NewProcessLauncher(),
		consoleImpl,
		logger,
	)

	app.SetRepositories(configRepo, system.NewPrivilegeRepository())
	app.SetUseCases(patchUseCase, launchUseCase)
	app.SetOutput(consoleImpl, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Executa o aplicativo
	if err := app.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
