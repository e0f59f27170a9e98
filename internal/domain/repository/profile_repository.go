package repository

// ProfileFileRepository abstrai o acesso aos arquivos de configuração das contas.
type ProfileFileRepository interface {
	Exists(path string) (bool, error)
	ReadFile(path string) (string, error)
	WriteFile(path string, content string) error
	// SetReadOnly liga ou desliga a proteção contra escrita do arquivo.
	SetReadOnly(path string, locked bool) error
}
