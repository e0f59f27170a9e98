package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/config"
	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/system"
	"github.com/diillson/valorant-launcher-go/internal/application/usecase"
	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
	"github.com/diillson/valorant-launcher-go/pkg/console"
	"github.com/diillson/valorant-launcher-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	patchUseCase  *usecase.PatchUseCase
	launchUseCase *usecase.LaunchUseCase
	configRepo    repository.ConfigRepository
	privilegeRepo repository.PrivilegeRepository
	console       types.ConsoleInterface
	logger        *log.Logger
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:               "valorant-launcher",
		Short:             "Patch VALORANT display settings, switch display mode and launch the game",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: app.configureLogging,
		RunE:              app.runLaunch,
	}
	rootCmd.SetVersionTemplate(`{{printf "VALORANT Launcher version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to an INI, TOML, YAML, or JSON configuration file (default: config.ini next to the executable)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the summary report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("no-elevate", false, "Do not request administrator privileges")
	elevatedFlag := strings.TrimPrefix(system.ElevatedFlag, "--")
	rootCmd.PersistentFlags().Bool(elevatedFlag, false, "Marks a process relaunched with administrator privileges")
	_ = rootCmd.PersistentFlags().MarkHidden(elevatedFlag)

	rootCmd.Flags().Bool("skip-patch", false, "Do not update the VALORANT config files")
	rootCmd.Flags().Bool("skip-monitors", false, "Do not disable monitors through Device Manager")
	rootCmd.Flags().Bool("skip-resolution", false, "Do not change the display resolution")
	rootCmd.Flags().Bool("skip-launch", false, "Do not launch the Riot Client")

	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "Update and lock the VALORANT config file of every configured account",
		RunE:  app.runPatch,
	}
	// Só no patch: no fluxo completo as etapas seguintes alterariam o sistema mesmo assim.
	patchCmd.Flags().Bool("dry-run", false, "Show what would change without unlocking or writing any config file")
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "unlock",
		Short: "Remove the read-only protection from every configured account's config file",
		RunE:  app.runUnlock,
	})

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetUseCases sets the use cases for the CLI app.
func (app *CLIApp) SetUseCases(patchUseCase *usecase.PatchUseCase, launchUseCase *usecase.LaunchUseCase) {
	app.patchUseCase = patchUseCase
	app.launchUseCase = launchUseCase
}

// SetRepositories sets the repositories used before any use case runs.
func (app *CLIApp) SetRepositories(configRepo repository.ConfigRepository, privilegeRepo repository.PrivilegeRepository) {
	app.configRepo = configRepo
	app.privilegeRepo = privilegeRepo
}

// SetOutput sets the console and the diagnostic logger.
func (app *CLIApp) SetOutput(c types.ConsoleInterface, logger *log.Logger) {
	app.console = c
	app.logger = logger
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	verbose, _ := flags.GetBool("verbose")
	dryRun, _ := flags.GetBool("dry-run")
	noElevate, _ := flags.GetBool("no-elevate")
	elevated, _ := flags.GetBool("elevated")
	skipPatch, _ := flags.GetBool("skip-patch")
	skipMonitors, _ := flags.GetBool("skip-monitors")
	skipResolution, _ := flags.GetBool("skip-resolution")
	skipLaunch, _ := flags.GetBool("skip-launch")

	if configFile == "" {
		configFile = config.DefaultConfigPath()
	}

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile:     configFile,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
		Verbose:        verbose,
		NoElevate:      noElevate,
		Elevated:       elevated,
		DryRun:         dryRun,
		SkipPatch:      skipPatch,
		SkipMonitors:   skipMonitors,
		SkipResolution: skipResolution,
		SkipLaunch:     skipLaunch,
	}, nil
}

func (app *CLIApp) configureLogging(cmd *cobra.Command, _ []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && app.logger != nil {
		app.logger.SetLevel(log.DebugLevel)
		app.logger.SetReportTimestamp(true)
	}
	return nil
}

// loadConfig carrega o arquivo de configuração; ausência ou erro de leitura é fatal.
func (app *CLIApp) loadConfig(path string) (*types.Config, error) {
	cfg, err := app.configRepo.LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file error (%s): %w", path, err)
	}
	app.logger.Debug("config loaded", "path", path, "accounts", len(cfg.Valorant.UserIDs))
	return cfg, nil
}

// ensureElevated relança o processo como administrador quando necessário.
// Retorna true quando o processo atual deve terminar e deixar o relançado continuar.
func (app *CLIApp) ensureElevated(args *types.CLIArgs) (bool, error) {
	if args.NoElevate || args.Elevated || app.privilegeRepo.IsElevated() {
		return false, nil
	}

	app.console.LogInfo("Requesting administrator privileges...")
	err := app.privilegeRepo.Relaunch(os.Args[1:])
	switch {
	case errors.Is(err, types.ErrUnsupportedPlatform):
		app.console.LogWarning("Elevation is not supported on this platform; continuing without it")
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

// runLaunch é o ponto de entrada principal: o fluxo completo do launcher.
func (app *CLIApp) runLaunch(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner()
	go version.CheckLatestVersion(cmd.Context(), app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	exit, err := app.ensureElevated(cliArgs)
	if err != nil || exit {
		return err
	}

	cfg, err := app.loadConfig(cliArgs.ConfigFile)
	if err != nil {
		return err
	}

	app.console.Println(console.BrightCyan("=== VALORANT Launcher ==="))
	app.console.Printf("Config     : %s\n", cliArgs.ConfigFile)
	app.console.Printf("Resolution : %dx%d @ %dHz\n", cfg.Display.ResolutionWidth, cfg.Display.ResolutionHeight, cfg.Display.RefreshRate)
	app.console.Printf("Accounts   : %d\n\n", len(cfg.Valorant.UserIDs))

	_, err = app.launchUseCase.Run(cmd.Context(), cfg, usecase.LaunchOptions{
		SkipPatch:      cliArgs.SkipPatch,
		SkipMonitors:   cliArgs.SkipMonitors,
		SkipResolution: cliArgs.SkipResolution,
		SkipLaunch:     cliArgs.SkipLaunch,
		ReportName:     cliArgs.ReportName,
		ReportType:     cliArgs.ReportType,
		Dir:            cliArgs.Dir,
	})
	return err
}

// runPatch atualiza apenas os arquivos de configuração.
func (app *CLIApp) runPatch(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	exit, err := app.ensureElevated(cliArgs)
	if err != nil || exit {
		return err
	}
	cfg, err := app.loadConfig(cliArgs.ConfigFile)
	if err != nil {
		return err
	}

	summary, err := app.patchUseCase.RunFromConfig(cmd.Context(), cfg, usecase.PatchOptions{DryRun: cliArgs.DryRun})
	if err != nil {
		return err
	}
	app.patchUseCase.ExportSummary(summary, cliArgs.ReportName, cliArgs.ReportType, cliArgs.Dir)

	if summary.Failed > 0 {
		return fmt.Errorf("%d account(s) could not be updated", summary.Failed)
	}
	return nil
}

// runUnlock remove a proteção contra escrita dos arquivos de todas as contas.
func (app *CLIApp) runUnlock(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	exit, err := app.ensureElevated(cliArgs)
	if err != nil || exit {
		return err
	}
	cfg, err := app.loadConfig(cliArgs.ConfigFile)
	if err != nil {
		return err
	}
	if err := cfg.ValidateProfiles(); err != nil {
		return err
	}

	profiles := usecase.ResolveProfiles(cfg.Paths.ValorantConfigDir, cfg.Subpath(), cfg.Valorant.UserIDs)
	summary := app.patchUseCase.Unlock(cmd.Context(), profiles)
	app.console.LogInfo("Unlocked %d account(s), failed %d", summary.Updated, summary.Failed)
	if summary.Failed > 0 {
		return fmt.Errorf("%d account(s) could not be unlocked", summary.Failed)
	}
	return nil
}
