package repository

import "context"

// DisplayController altera o modo de vídeo do monitor principal.
type DisplayController interface {
	SetMode(ctx context.Context, width, height, refreshRate uint) error
}

// MonitorRepository desabilita os monitores via gerenciador de dispositivos.
// A saída bruta do comando é retornada mesmo quando há erro.
type MonitorRepository interface {
	DisableAll(ctx context.Context) (string, error)
}

// ProcessLauncher inicia um processo externo sem aguardar seu término.
type ProcessLauncher interface {
	Launch(ctx context.Context, executable, workDir string, args []string) (int, error)
}

// PrivilegeRepository verifica e solicita privilégios de administrador.
type PrivilegeRepository interface {
	IsElevated() bool
	Relaunch(args []string) error
}
