package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/filesystem"
	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
	"github.com/diillson/valorant-launcher-go/internal/domain/patch"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

const patchedSettings = `[/Script/ShooterGame.ShooterGameUserSettings]
DefaultMonitorDeviceID="DISPLAY1"
DefaultMonitorIndex=1
ResolutionSizeX=1280
ResolutionSizeY=960
FullscreenMode=0
bShouldLetterbox=False
LastConfirmedFullscreenMode=0
PreferredFullscreenMode=0
bLastConfirmedShouldLetterbox=False
`

func newTestPatchUseCase(files *recordingFiles) (*PatchUseCase, *fakeConsole, *fakeExport) {
	console := &fakeConsole{}
	exporter := &fakeExport{}
	return NewPatchUseCase(files, exporter, console, discardLogger()), console, exporter
}

func assertLocked(t *testing.T, path string, want bool) {
	t.Helper()
	locked, err := filesystem.IsReadOnly(path)
	require.NoError(t, err)
	assert.Equal(t, want, locked, "read-only state of %s", path)
}

func TestTargetFromConfig(t *testing.T) {
	cfg := testConfig(t.TempDir(), "acc")

	target, err := TargetFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.TargetValues{Width: 1280, Height: 960, MonitorDeviceID: "DISPLAY1", MonitorIndex: 1}, target)

	cfg.Display.MonitorIndex = nil
	_, err = TargetFromConfig(cfg)
	assert.ErrorIs(t, err, types.ErrConfigMissing)
}

func TestPatchUseCase_RunFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "account-one", settings)
	uc, console, _ := newTestPatchUseCase(newRecordingFiles(nil))

	summary, err := uc.RunFromConfig(context.Background(), testConfig(dir, "account-one"), PatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, summary.PerProfile, 1)

	result := summary.PerProfile[0]
	assert.Equal(t, entity.StatusUpdated, result.Status)
	assert.True(t, result.Changed)
	assert.Len(t, result.Outcomes, 17)
	assert.Equal(t, []string{
		"ResolutionSizeX=1280",
		"ResolutionSizeY=960",
		"FullscreenMode=0",
		"bShouldLetterbox=False",
	}, result.VerifyLines)

	assert.Equal(t, patchedSettings, readProfile(t, path))
	assertLocked(t, path, true)

	require.Len(t, console.tables, 1)
	assert.Len(t, console.tables[0].rows, 1)
	assert.Contains(t, console.output(), "Updated: account-... (changes applied)")
	assert.Contains(t, console.output(), "Resolution set to 1280x960")
}

func TestPatchUseCase_RunFromConfigInvalid(t *testing.T) {
	files := newRecordingFiles(nil)
	uc, _, _ := newTestPatchUseCase(files)

	cfg := testConfig(t.TempDir())
	_, err := uc.RunFromConfig(context.Background(), cfg, PatchOptions{})
	assert.ErrorIs(t, err, types.ErrConfigMissing)

	cfg = testConfig(t.TempDir(), "acc")
	cfg.Display.MonitorConfigID = `bad"id`
	_, err = uc.RunFromConfig(context.Background(), cfg, PatchOptions{})
	assert.ErrorIs(t, err, types.ErrInvalidTarget)
	assert.Zero(t, files.writes)
}

func TestPatchUseCase_FaultIsolation(t *testing.T) {
	dir := t.TempDir()
	first := writeProfile(t, dir, "first", settings)
	third := writeProfile(t, dir, "third", settings)
	uc, console, _ := newTestPatchUseCase(newRecordingFiles(nil))

	summary, err := uc.RunFromConfig(context.Background(), testConfig(dir, "first", "second", "third"), PatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.PerProfile, 3)
	assert.Equal(t, entity.StatusUpdated, summary.PerProfile[0].Status)
	assert.Equal(t, entity.StatusNotFound, summary.PerProfile[1].Status)
	assert.Contains(t, summary.PerProfile[1].Reason, types.ErrProfileNotFound.Error())
	assert.Equal(t, entity.StatusUpdated, summary.PerProfile[2].Status)

	assert.Equal(t, patchedSettings, readProfile(t, first))
	assert.Equal(t, patchedSettings, readProfile(t, third))
	assert.Contains(t, console.output(), "WARN Config file not found")
}

func TestPatchUseCase_RelocksWhenWriteFails(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "acc", settings)
	files := newRecordingFiles(nil)
	files.writeErr = errors.New("disk full")
	uc, _, _ := newTestPatchUseCase(files)

	profiles := ResolveProfiles(dir, types.DefaultConfigSubpath, []string{"acc"})
	rules, err := patch.BuildRuleSet(entity.TargetValues{Width: 1280, Height: 960, MonitorDeviceID: "D", MonitorIndex: 0})
	require.NoError(t, err)

	summary := uc.Run(context.Background(), profiles, rules, PatchOptions{})

	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, entity.StatusFailed, summary.PerProfile[0].Status)
	assert.Contains(t, summary.PerProfile[0].Reason, "disk full")
	assertLocked(t, path, true)
	assert.Equal(t, settings, readProfile(t, path))
}

func TestPatchUseCase_UnlockFailureSkipsWrite(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "acc", settings)
	files := newRecordingFiles(nil)
	files.unlockErr = errors.New("access denied")
	uc, _, _ := newTestPatchUseCase(files)

	summary, err := uc.RunFromConfig(context.Background(), testConfig(dir, "acc"), PatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, summary.PerProfile[0].Reason, "unlock: access denied")
	assert.Zero(t, files.writes)
}

func TestPatchUseCase_DuplicateAccounts(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "acc", settings)
	uc, _, _ := newTestPatchUseCase(newRecordingFiles(nil))

	summary, err := uc.RunFromConfig(context.Background(), testConfig(dir, "acc", "acc"), PatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Updated)
	assert.True(t, summary.PerProfile[0].Changed)
	assert.False(t, summary.PerProfile[1].Changed)
	assert.Equal(t, 1, summary.Changed())
	assert.Equal(t, patchedSettings, readProfile(t, path))
	assertLocked(t, path, true)
}

func TestPatchUseCase_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "acc", settings)
	files := newRecordingFiles(nil)
	uc, console, _ := newTestPatchUseCase(files)

	summary, err := uc.RunFromConfig(context.Background(), testConfig(dir, "acc"), PatchOptions{DryRun: true})
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Updated)
	assert.True(t, summary.PerProfile[0].Changed)
	assert.Contains(t, summary.PerProfile[0].VerifyLines, "FullscreenMode=0")

	assert.Zero(t, files.writes)
	assert.Equal(t, settings, readProfile(t, path))
	assertLocked(t, path, false)
	assert.Contains(t, console.output(), "(would change)")
	assert.Contains(t, console.output(), "Dry run: no file was written")
}

func TestPatchUseCase_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "acc", settings)
	files := newRecordingFiles(nil)
	uc, _, _ := newTestPatchUseCase(files)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := uc.RunFromConfig(ctx, testConfig(dir, "acc", "other"), PatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Failed)
	for _, r := range summary.PerProfile {
		assert.Equal(t, entity.StatusFailed, r.Status)
		assert.Equal(t, context.Canceled.Error(), r.Reason)
	}
	assert.Zero(t, files.writes)
	assert.Equal(t, settings, readProfile(t, path))
}

func TestPatchUseCase_Unlock(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "acc", settings)
	require.NoError(t, filesystem.SetReadOnly(path, true))
	uc, console, _ := newTestPatchUseCase(newRecordingFiles(nil))

	profiles := ResolveProfiles(dir, types.DefaultConfigSubpath, []string{"acc", "missing"})
	summary := uc.Unlock(context.Background(), profiles)

	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, entity.StatusUnlocked, summary.PerProfile[0].Status)
	assert.Equal(t, entity.StatusNotFound, summary.PerProfile[1].Status)
	assertLocked(t, path, false)
	assert.Contains(t, console.output(), "OK Unlocked: acc")
}

func TestPatchUseCase_ExportSummary(t *testing.T) {
	uc, console, exporter := newTestPatchUseCase(newRecordingFiles(nil))
	summary := entity.BatchSummary{Updated: 1}

	uc.ExportSummary(summary, "", []string{"csv"}, t.TempDir())
	assert.Empty(t, exporter.calls)

	uc.ExportSummary(summary, "report", []string{"csv", "json", "pdf", "xlsx"}, "out")
	assert.Equal(t, []string{"csv", "json", "pdf"}, exporter.calls)
	assert.Contains(t, console.output(), "OK Successfully exported summary to CSV: "+filepath.Join("out", "report.csv"))
	assert.Contains(t, console.output(), "WARN Unknown report type 'xlsx' ignored")

	exporter.err = os.ErrPermission
	uc.ExportSummary(summary, "report", []string{"json"}, "out")
	assert.Contains(t, console.output(), "ERROR Failed to export summary to JSON")
}
