package filesystem

import (
	"fmt"
	"os"
)

const (
	ownerWrite = 0o200
	anyWrite   = 0o222
)

// SetReadOnly liga ou desliga a proteção contra escrita de path.
// Travar remove todos os bits de escrita; destravar devolve apenas o do dono.
// No Windows o bit de escrita do dono corresponde ao atributo somente leitura.
func SetReadOnly(path string, locked bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error reading attributes of %s: %w", path, err)
	}

	mode := info.Mode().Perm()
	if locked {
		mode &^= anyWrite
	} else {
		mode |= ownerWrite
	}

	if mode == info.Mode().Perm() {
		return nil
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("error changing attributes of %s: %w", path, err)
	}
	return nil
}

// IsReadOnly informa se nenhum bit de escrita está ligado em path.
func IsReadOnly(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&anyWrite == 0, nil
}
