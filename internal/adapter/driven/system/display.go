package system

import (
	"fmt"

	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
)

// DisplayModeError carrega o código retornado pela API de vídeo.
type DisplayModeError struct {
	Code int32
}

func (e *DisplayModeError) Error() string {
	return fmt.Sprintf("display mode change failed with code %d (the requested refresh rate may not be supported)", e.Code)
}

// DisplayControllerImpl implementa o DisplayController.
type DisplayControllerImpl struct{}

// NewDisplayController cria uma nova implementação do DisplayController.
func NewDisplayController() repository.DisplayController {
	return &DisplayControllerImpl{}
}
