package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

// RiotClientArgs são os argumentos que abrem o VALORANT no patchline live.
var RiotClientArgs = []string{"--launch-product=valorant", "--launch-patchline=live"}

const (
	monitorsSettleDelay   = 3 * time.Second
	resolutionSettleDelay = 7 * time.Second
)

// LaunchOptions seleciona as etapas do fluxo de inicialização.
type LaunchOptions struct {
	SkipPatch      bool
	SkipMonitors   bool
	SkipResolution bool
	SkipLaunch     bool
	Patch          PatchOptions
	ReportName     string
	ReportType     []string
	Dir            string
}

// LaunchReport resume o resultado de cada etapa executada.
type LaunchReport struct {
	Summary           *entity.BatchSummary
	MonitorsDisabled  bool
	ResolutionChanged bool
	Launched          bool
	PID               int
}

// LaunchUseCase executa o fluxo completo: configs, monitores, resolução e cliente.
type LaunchUseCase struct {
	patcher  *PatchUseCase
	display  repository.DisplayController
	monitors repository.MonitorRepository
	launcher repository.ProcessLauncher
	console  types.ConsoleInterface
	logger   *log.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewLaunchUseCase creates a new launch use case.
func NewLaunchUseCase(
	patcher *PatchUseCase,
	display repository.DisplayController,
	monitors repository.MonitorRepository,
	launcher repository.ProcessLauncher,
	console types.ConsoleInterface,
	logger *log.Logger,
) *LaunchUseCase {
	return &LaunchUseCase{
		patcher:  patcher,
		display:  display,
		monitors: monitors,
		launcher: launcher,
		console:  console,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// Run executa as etapas em ordem. Falhas de uma etapa são reportadas e não
// impedem as seguintes; só erros de configuração ou cancelamento retornam erro.
func (uc *LaunchUseCase) Run(ctx context.Context, cfg *types.Config, opts LaunchOptions) (LaunchReport, error) {
	var report LaunchReport

	if err := cfg.ValidateLaunch(); err != nil {
		return report, err
	}

	if !opts.SkipPatch {
		uc.console.LogInfo("Updating VALORANT config files...")
		summary, err := uc.patcher.RunFromConfig(ctx, cfg, opts.Patch)
		if err != nil {
			return report, err
		}
		report.Summary = &summary
		uc.patcher.ExportSummary(summary, opts.ReportName, opts.ReportType, opts.Dir)
		uc.console.Println()
	}

	if !opts.SkipMonitors {
		uc.console.LogInfo("Disabling all monitors...")
		output, err := uc.monitors.DisableAll(ctx)
		if output != "" {
			uc.console.Printf("  Output: %s\n", output)
		}
		if err != nil {
			uc.console.LogError("Failed to disable monitors: %s", err)
		} else {
			report.MonitorsDisabled = true
			uc.console.LogSuccess("All monitors disabled")
		}
		uc.console.Println()

		if err := uc.countdown(ctx, monitorsSettleDelay, "Waiting 3 seconds"); err != nil {
			return report, err
		}
	}

	if !opts.SkipResolution {
		d := cfg.Display
		uc.console.LogInfo("Changing resolution...")
		if err := uc.display.SetMode(ctx, d.ResolutionWidth, d.ResolutionHeight, d.RefreshRate); err != nil {
			uc.console.LogError("Failed to change resolution: %s", err)
		} else {
			report.ResolutionChanged = true
			uc.console.LogSuccess("Resolution changed to %dx%d @ %dHz", d.ResolutionWidth, d.ResolutionHeight, d.RefreshRate)
		}
		uc.console.Println()

		if err := uc.countdown(ctx, resolutionSettleDelay, "Waiting 7 seconds"); err != nil {
			return report, err
		}
	}

	if !opts.SkipLaunch {
		exe := ExpandPath(cfg.Paths.RiotClientExe)
		uc.console.LogInfo("Launching VALORANT...")
		pid, err := uc.launcher.Launch(ctx, exe, filepath.Dir(exe), RiotClientArgs)
		if err != nil {
			uc.console.LogError("Failed to launch VALORANT: %s", err)
			uc.console.Println("  Please update 'riot_client_exe' in your config file")
		} else {
			report.Launched = true
			report.PID = pid
			uc.logger.Debug("riot client started", "pid", pid, "exe", exe)
			uc.console.LogSuccess("Launched VALORANT")
		}
		uc.console.Println()
	}

	uc.console.LogSuccess("Done!")
	return report, nil
}

func (uc *LaunchUseCase) countdown(ctx context.Context, total time.Duration, label string) error {
	seconds := int(total / time.Second)
	status := uc.console.Status(label + "...")
	defer status.Stop()

	for i := seconds; i > 0; i-- {
		status.Update(fmt.Sprintf("%s... %d", label, i))
		if err := uc.sleep(ctx, time.Second); err != nil {
			return err
		}
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
