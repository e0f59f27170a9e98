//go:build !windows

package system

import (
	"fmt"
	"os"

	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

// IsElevated informa se o processo roda como root.
func (p *PrivilegeRepositoryImpl) IsElevated() bool {
	return os.Geteuid() == 0
}

// Relaunch não é suportado fora do Windows.
func (p *PrivilegeRepositoryImpl) Relaunch(args []string) error {
	return fmt.Errorf("relaunch elevated: %w", types.ErrUnsupportedPlatform)
}
