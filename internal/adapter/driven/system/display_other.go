//go:build !windows

package system

import (
	"context"
	"fmt"

	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

// SetMode não é suportado fora do Windows.
func (d *DisplayControllerImpl) SetMode(ctx context.Context, width, height, refreshRate uint) error {
	return fmt.Errorf("set display mode %dx%d@%dHz: %w", width, height, refreshRate, types.ErrUnsupportedPlatform)
}
