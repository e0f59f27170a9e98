package cli

import (
	"fmt"

	"github.com/diillson/valorant-launcher-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
 __   __ _    _     ___  ____      _    _   _ _____
 \ \ / // \  | |   / _ \|  _ \    / \  | \ | |_   _|
  \ V // _ \ | |  | | | | |_) |  / _ \ |  \| | | |
   \ V/ ___ \| |__| |_| |  _ <  / ___ \| |\  | | |
    \/_/   \_\_____\___/|_| \_\/_/   \_\_| \_| |_|
                                        launcher
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("VALORANT Launcher CLI (v%s)", version.FormatVersion())))
}
