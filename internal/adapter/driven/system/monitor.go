package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

const disableMonitorsScript = "Get-PnpDevice -Class Monitor | " +
	"Where-Object {$_.Status -eq 'OK'} | " +
	"Disable-PnpDevice -Confirm:$false"

// MonitorRepositoryImpl implementa o MonitorRepository via PowerShell.
type MonitorRepositoryImpl struct {
	shell string
}

// NewMonitorRepository cria uma nova implementação do MonitorRepository.
func NewMonitorRepository() repository.MonitorRepository {
	return &MonitorRepositoryImpl{shell: "powershell"}
}

// DisableAll desabilita todos os monitores ativos. A saída combinada
// (stdout e stderr) é retornada mesmo em caso de falha.
func (m *MonitorRepositoryImpl) DisableAll(ctx context.Context) (string, error) {
	if runtime.GOOS != "windows" {
		return "", fmt.Errorf("disable monitors: %w", types.ErrUnsupportedPlatform)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, m.shell, "-NoProfile", "-Command", disableMonitorsScript)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := strings.TrimSpace(strings.TrimSpace(stdout.String()) + "\n" + strings.TrimSpace(stderr.String()))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, fmt.Errorf("disable monitors exited with code %d", exitErr.ExitCode())
		}
		return output, fmt.Errorf("disable monitors: %w", err)
	}
	return output, nil
}
