package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
)

// ProfileFileRepositoryImpl implementa o ProfileFileRepository sobre o sistema de arquivos local.
type ProfileFileRepositoryImpl struct{}

// NewProfileFileRepository cria uma nova implementação do ProfileFileRepository.
func NewProfileFileRepository() repository.ProfileFileRepository {
	return &ProfileFileRepositoryImpl{}
}

// Exists informa se path existe e é um arquivo regular.
func (r *ProfileFileRepositoryImpl) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory, not a file", path)
	}
	return true, nil
}

// ReadFile lê o arquivo inteiro como texto.
func (r *ProfileFileRepositoryImpl) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile sobrescreve o arquivo inteiro com content.
func (r *ProfileFileRepositoryImpl) WriteFile(path string, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// SetReadOnly delega para a trava de atributos do pacote.
func (r *ProfileFileRepositoryImpl) SetReadOnly(path string, locked bool) error {
	return SetReadOnly(path, locked)
}
