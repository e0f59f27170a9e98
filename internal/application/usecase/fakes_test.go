package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/diillson/valorant-launcher-go/internal/adapter/driven/filesystem"
	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

const settings = `[/Script/ShooterGame.ShooterGameUserSettings]
DefaultMonitorDeviceID="DISPLAY0"
DefaultMonitorIndex=0
ResolutionSizeX=1920
ResolutionSizeY=1080
FullscreenMode=1
bShouldLetterbox=True
`

func testConfig(dir string, ids ...string) *types.Config {
	idx := uint(1)
	return &types.Config{
		Display: types.DisplayConfig{
			ResolutionWidth:  1280,
			ResolutionHeight: 960,
			RefreshRate:      144,
			MonitorIndex:     &idx,
			MonitorConfigID:  "DISPLAY1",
		},
		Valorant: types.ValorantConfig{UserIDs: ids},
		Paths: types.PathsConfig{
			RiotClientExe:     filepath.Join(dir, "Riot Client", "RiotClientServices.exe"),
			ValorantConfigDir: dir,
		},
	}
}

// writeProfile cria o arquivo de configuração de uma conta dentro de dir.
func writeProfile(t *testing.T, dir, accountID, content string) string {
	t.Helper()
	path := filepath.Join(dir, accountID, filepath.FromSlash(types.DefaultConfigSubpath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chmod(path, 0o644))
	t.Cleanup(func() { _ = filesystem.SetReadOnly(path, false) })
	return path
}

func readProfile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

type fakeConsole struct {
	lines    []string
	statuses []string
	stopped  int
	tables   []*fakeTable
}

func (c *fakeConsole) add(line string) { c.lines = append(c.lines, line) }

func (c *fakeConsole) Print(a ...interface{})                 { c.add(fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.add(fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.add(strings.TrimSuffix(fmt.Sprintln(a...), "\n")) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.add("INFO " + fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.add("WARN " + fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.add("ERROR " + fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.add("OK " + fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(message string) types.StatusHandle {
	c.statuses = append(c.statuses, message)
	return &fakeStatus{console: c}
}

func (c *fakeConsole) CreateTable() types.TableInterface {
	table := &fakeTable{}
	c.tables = append(c.tables, table)
	return table
}

func (c *fakeConsole) output() string {
	return strings.Join(c.lines, "\n")
}

type fakeStatus struct {
	console *fakeConsole
}

func (s *fakeStatus) Update(message string) { s.console.statuses = append(s.console.statuses, message) }
func (s *fakeStatus) Stop()                 { s.console.stopped++ }

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                          { return "" }

type fakeExport struct {
	calls []string
	err   error
}

func (e *fakeExport) record(kind, name, dir string) (string, error) {
	e.calls = append(e.calls, kind)
	if e.err != nil {
		return "", e.err
	}
	return filepath.Join(dir, name+"."+kind), nil
}

func (e *fakeExport) ExportSummaryToCSV(_ entity.BatchSummary, name, dir string) (string, error) {
	return e.record("csv", name, dir)
}

func (e *fakeExport) ExportSummaryToJSON(_ entity.BatchSummary, name, dir string) (string, error) {
	return e.record("json", name, dir)
}

func (e *fakeExport) ExportSummaryToPDF(_ entity.BatchSummary, name, dir string) (string, error) {
	return e.record("pdf", name, dir)
}

// recorder guarda a ordem em que as etapas foram executadas.
type recorder struct {
	events []string
}

func (r *recorder) add(event string) { r.events = append(r.events, event) }

// recordingFiles usa o sistema de arquivos real, registrando gravações e
// permitindo injetar falhas.
type recordingFiles struct {
	repository.ProfileFileRepository
	rec       *recorder
	writeErr  error
	unlockErr error
	writes    int
}

func newRecordingFiles(rec *recorder) *recordingFiles {
	if rec == nil {
		rec = &recorder{}
	}
	return &recordingFiles{ProfileFileRepository: filesystem.NewProfileFileRepository(), rec: rec}
}

func (f *recordingFiles) WriteFile(path, content string) error {
	f.rec.add("write")
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.ProfileFileRepository.WriteFile(path, content)
}

func (f *recordingFiles) SetReadOnly(path string, locked bool) error {
	if !locked && f.unlockErr != nil {
		return f.unlockErr
	}
	return f.ProfileFileRepository.SetReadOnly(path, locked)
}

type fakeDisplay struct {
	rec  *recorder
	err  error
	mode [3]uint
}

func (d *fakeDisplay) SetMode(_ context.Context, width, height, refreshRate uint) error {
	d.rec.add("display")
	d.mode = [3]uint{width, height, refreshRate}
	return d.err
}

type fakeMonitors struct {
	rec    *recorder
	output string
	err    error
}

func (m *fakeMonitors) DisableAll(context.Context) (string, error) {
	m.rec.add("monitors")
	return m.output, m.err
}

type fakeLauncher struct {
	rec     *recorder
	exe     string
	workDir string
	args    []string
	pid     int
	err     error
}

func (l *fakeLauncher) Launch(_ context.Context, exe, workDir string, args []string) (int, error) {
	l.rec.add("launch")
	l.exe, l.workDir, l.args = exe, workDir, args
	if l.err != nil {
		return 0, l.err
	}
	return l.pid, nil
}
