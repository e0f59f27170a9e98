package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
	"github.com/diillson/valorant-launcher-go/internal/domain/patch"
	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

// PatchOptions controla a execução de um lote.
type PatchOptions struct {
	// DryRun aplica as regras em memória sem destravar nem gravar os arquivos.
	DryRun bool
}

// PatchUseCase atualiza os arquivos de configuração de todas as contas.
type PatchUseCase struct {
	files      repository.ProfileFileRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	logger     *log.Logger
}

// NewPatchUseCase creates a new patch use case.
func NewPatchUseCase(
	files repository.ProfileFileRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	logger *log.Logger,
) *PatchUseCase {
	return &PatchUseCase{
		files:      files,
		exportRepo: exportRepo,
		console:    console,
		logger:     logger,
	}
}

// TargetFromConfig extrai os valores-alvo exigidos pelas regras.
func TargetFromConfig(cfg *types.Config) (entity.TargetValues, error) {
	if err := cfg.ValidatePatch(); err != nil {
		return entity.TargetValues{}, err
	}
	return entity.TargetValues{
		Width:           cfg.Display.ResolutionWidth,
		Height:          cfg.Display.ResolutionHeight,
		MonitorDeviceID: cfg.MonitorID(),
		MonitorIndex:    *cfg.Display.MonitorIndex,
	}, nil
}

// RunFromConfig resolve perfis e regras a partir da configuração e executa o lote.
// Erros retornados aqui são de configuração e impedem o lote de começar.
func (uc *PatchUseCase) RunFromConfig(ctx context.Context, cfg *types.Config, opts PatchOptions) (entity.BatchSummary, error) {
	target, err := TargetFromConfig(cfg)
	if err != nil {
		return entity.BatchSummary{}, err
	}
	rules, err := patch.BuildRuleSet(target)
	if err != nil {
		return entity.BatchSummary{}, err
	}
	profiles := ResolveProfiles(cfg.Paths.ValorantConfigDir, cfg.Subpath(), cfg.Valorant.UserIDs)

	summary := uc.Run(ctx, profiles, rules, opts)
	uc.ReportSummary(summary, target)
	return summary, nil
}

// Run processa os perfis em ordem, um de cada vez. Falhas de um perfil são
// registradas no resumo e nunca interrompem os demais.
func (uc *PatchUseCase) Run(ctx context.Context, profiles []entity.Profile, rules []patch.PatchRule, opts PatchOptions) entity.BatchSummary {
	summary := entity.BatchSummary{
		DryRun:     opts.DryRun,
		PerProfile: make([]entity.ProfileResult, 0, len(profiles)),
	}

	for _, profile := range profiles {
		var result entity.ProfileResult
		if err := ctx.Err(); err != nil {
			result = failed(profile, err)
		} else {
			result = uc.processProfile(profile, rules, opts)
		}
		uc.printResult(profile, result, opts.DryRun)
		summary.Record(result)
	}

	return summary
}

func (uc *PatchUseCase) processProfile(profile entity.Profile, rules []patch.PatchRule, opts PatchOptions) entity.ProfileResult {
	exists, err := uc.files.Exists(profile.FilePath)
	if err != nil {
		return failed(profile, err)
	}
	if !exists {
		return entity.ProfileResult{
			AccountID: profile.AccountID,
			FilePath:  profile.FilePath,
			Status:    entity.StatusNotFound,
			Reason:    fmt.Sprintf("%s: %s", types.ErrProfileNotFound, profile.FilePath),
		}
	}

	var res patch.Result
	var changed bool
	if opts.DryRun {
		res, changed, err = uc.preview(profile.FilePath, rules)
	} else {
		res, changed, err = uc.rewrite(profile.FilePath, rules)
	}
	if err != nil {
		return failed(profile, err)
	}

	uc.logger.Debug("profile patched",
		"account", profile.AccountID,
		"path", profile.FilePath,
		"changed", changed,
		"dry_run", opts.DryRun,
	)
	for _, o := range res.Outcomes {
		uc.logger.Debug("rule", "account", profile.AccountID, "key", o.Key, "matches", o.MatchCount, "appended", o.Appended)
	}

	return entity.ProfileResult{
		AccountID:   profile.AccountID,
		FilePath:    profile.FilePath,
		Status:      entity.StatusUpdated,
		Changed:     changed,
		Outcomes:    res.Outcomes,
		VerifyLines: patch.ExtractLines(res.Content, patch.VerifyKeys),
	}
}

// rewrite destrava, aplica, grava e trava o arquivo novamente. Toda saída
// posterior ao destrave passa pelo defer que religa a proteção.
func (uc *PatchUseCase) rewrite(path string, rules []patch.PatchRule) (res patch.Result, changed bool, err error) {
	if err := uc.files.SetReadOnly(path, false); err != nil {
		return patch.Result{}, false, fmt.Errorf("unlock: %w", err)
	}
	defer func() {
		if lockErr := uc.files.SetReadOnly(path, true); lockErr != nil {
			err = errors.Join(err, fmt.Errorf("relock: %w", lockErr))
		}
	}()

	original, err := uc.files.ReadFile(path)
	if err != nil {
		return patch.Result{}, false, err
	}
	res, err = patch.Apply(original, rules)
	if err != nil {
		return patch.Result{}, false, err
	}
	if err := uc.files.WriteFile(path, res.Content); err != nil {
		return patch.Result{}, false, err
	}
	return res, res.Content != original, nil
}

func (uc *PatchUseCase) preview(path string, rules []patch.PatchRule) (patch.Result, bool, error) {
	original, err := uc.files.ReadFile(path)
	if err != nil {
		return patch.Result{}, false, err
	}
	res, err := patch.Apply(original, rules)
	if err != nil {
		return patch.Result{}, false, err
	}
	return res, res.Content != original, nil
}

// Unlock remove a proteção contra escrita de todos os arquivos existentes,
// permitindo que o jogo volte a salvar as próprias configurações.
func (uc *PatchUseCase) Unlock(ctx context.Context, profiles []entity.Profile) entity.BatchSummary {
	summary := entity.BatchSummary{PerProfile: make([]entity.ProfileResult, 0, len(profiles))}

	for _, profile := range profiles {
		result := entity.ProfileResult{AccountID: profile.AccountID, FilePath: profile.FilePath}
		exists, err := uc.files.Exists(profile.FilePath)
		switch {
		case ctx.Err() != nil:
			result = failed(profile, ctx.Err())
		case err != nil:
			result = failed(profile, err)
		case !exists:
			result.Status = entity.StatusNotFound
			result.Reason = fmt.Sprintf("%s: %s", types.ErrProfileNotFound, profile.FilePath)
		default:
			if err := uc.files.SetReadOnly(profile.FilePath, false); err != nil {
				result = failed(profile, err)
			} else {
				result.Status = entity.StatusUnlocked
			}
		}

		switch result.Status {
		case entity.StatusUnlocked:
			uc.console.LogSuccess("Unlocked: %s", profile.ShortID())
		case entity.StatusNotFound:
			uc.console.LogWarning("Config file not found: %s", profile.FilePath)
		default:
			uc.console.LogError("Failed: %s: %s", profile.ShortID(), result.Reason)
		}
		summary.Record(result)
	}

	return summary
}

func (uc *PatchUseCase) printResult(profile entity.Profile, result entity.ProfileResult, dryRun bool) {
	switch result.Status {
	case entity.StatusNotFound:
		uc.console.LogWarning("Config file not found: %s", profile.FilePath)
	case entity.StatusFailed:
		uc.console.LogError("Failed: %s: %s", profile.ShortID(), result.Reason)
	case entity.StatusUpdated:
		note := "(already correct)"
		if result.Changed {
			note = "(changes applied)"
			if dryRun {
				note = "(would change)"
			}
		}
		uc.console.LogSuccess("Updated: %s %s", profile.ShortID(), note)
		for _, line := range result.VerifyLines {
			uc.console.Printf("      %s\n", line)
		}
	}
}

// ReportSummary exibe a tabela por conta e as contagens do lote.
func (uc *PatchUseCase) ReportSummary(summary entity.BatchSummary, target entity.TargetValues) {
	table := uc.console.CreateTable()
	table.AddColumn("Account")
	table.AddColumn("Status")
	table.AddColumn("Changed")
	table.AddColumn("Details")
	for _, r := range summary.PerProfile {
		details := r.Reason
		if details == "" {
			details = "-"
		}
		table.AddRow(entity.Profile{AccountID: r.AccountID}.ShortID(), string(r.Status), r.Changed, details)
	}
	uc.console.Print(table.Render())

	uc.console.LogSuccess("Updated %d account(s)", summary.Updated)
	if summary.Failed > 0 {
		uc.console.LogError("Failed  %d account(s)", summary.Failed)
	}
	uc.console.Println("  - FullscreenMode=0 (exclusive fullscreen)")
	uc.console.Println("  - Letterbox disabled")
	uc.console.Printf("  - Resolution set to %dx%d\n", target.Width, target.Height)
	if summary.DryRun {
		uc.console.Println("  - Dry run: no file was written")
	} else {
		uc.console.Println("  - Config files locked read-only")
	}
}

// ExportSummary grava o resumo nos formatos solicitados.
func (uc *PatchUseCase) ExportSummary(summary entity.BatchSummary, reportName string, reportTypes []string, dir string) {
	if reportName == "" {
		return
	}
	for _, reportType := range reportTypes {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportSummaryToCSV(summary, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export summary to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported summary to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportSummaryToJSON(summary, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export summary to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported summary to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportSummaryToPDF(summary, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export summary to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported summary to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored", reportType)
		}
	}
}

func failed(profile entity.Profile, err error) entity.ProfileResult {
	return entity.ProfileResult{
		AccountID: profile.AccountID,
		FilePath:  profile.FilePath,
		Status:    entity.StatusFailed,
		Reason:    err.Error(),
	}
}
