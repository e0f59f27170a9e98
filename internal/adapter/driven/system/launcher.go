package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
)

// ProcessLauncherImpl implementa o ProcessLauncher.
type ProcessLauncherImpl struct{}

// NewProcessLauncher cria uma nova implementação do ProcessLauncher.
func NewProcessLauncher() repository.ProcessLauncher {
	return &ProcessLauncherImpl{}
}

// Launch inicia executable em workDir e retorna o PID sem aguardar o término.
// ctx só é consultado antes do início: o processo filho sobrevive ao launcher.
func (l *ProcessLauncherImpl) Launch(ctx context.Context, executable, workDir string, args []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	info, err := os.Stat(executable)
	if err != nil {
		return 0, fmt.Errorf("executable not found at %s: %w", executable, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory, not an executable", executable)
	}

	cmd := exec.Command(executable, args...)
	cmd.Dir = workDir
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("error starting %s: %w", executable, err)
	}

	pid := cmd.Process.Pid
	// O processo não é aguardado; libera os recursos do handle.
	_ = cmd.Process.Release()
	return pid, nil
}
