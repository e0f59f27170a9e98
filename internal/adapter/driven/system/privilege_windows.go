//go:build windows

package system

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// IsElevated informa se o token do processo atual está elevado.
func (p *PrivilegeRepositoryImpl) IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch reinicia o executável atual com o verbo "runas" (prompt do UAC).
func (p *PrivilegeRepositoryImpl) Relaunch(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not get current working directory: %w", err)
	}

	quoted := make([]string, 0, len(args)+1)
	for _, a := range args {
		quoted = append(quoted, windows.EscapeArg(a))
	}
	quoted = append(quoted, ElevatedFlag)

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(strings.Join(quoted, " "))
	if err != nil {
		return err
	}
	dir, err := windows.UTF16PtrFromString(cwd)
	if err != nil {
		return err
	}

	if err := windows.ShellExecute(0, verb, file, params, dir, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("failed to elevate privileges: %w", err)
	}
	return nil
}
