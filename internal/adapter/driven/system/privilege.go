package system

import (
	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
)

// ElevatedFlag marca o processo relançado para evitar um ciclo de elevação.
const ElevatedFlag = "--elevated"

// PrivilegeRepositoryImpl implementa o PrivilegeRepository.
type PrivilegeRepositoryImpl struct{}

// NewPrivilegeRepository cria uma nova implementação do PrivilegeRepository.
func NewPrivilegeRepository() repository.PrivilegeRepository {
	return &PrivilegeRepositoryImpl{}
}
