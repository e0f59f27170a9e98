package types

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultConfigSubpath é o caminho, relativo à pasta de cada conta, do arquivo de configuração do jogo.
const DefaultConfigSubpath = "WindowsClient/GameUserSettings.ini"

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Display  DisplayConfig  `json:"display" yaml:"display" toml:"display"`
	Valorant ValorantConfig `json:"valorant" yaml:"valorant" toml:"valorant"`
	Paths    PathsConfig    `json:"paths" yaml:"paths" toml:"paths"`
}

// DisplayConfig agrupa os valores de vídeo desejados.
type DisplayConfig struct {
	ResolutionWidth  uint   `json:"resolution_width" yaml:"resolution_width" toml:"resolution_width"`
	ResolutionHeight uint   `json:"resolution_height" yaml:"resolution_height" toml:"resolution_height"`
	RefreshRate      uint   `json:"refresh_rate" yaml:"refresh_rate" toml:"refresh_rate"`
	MonitorIndex     *uint  `json:"monitor_index" yaml:"monitor_index" toml:"monitor_index"`
	MonitorConfigID  string `json:"monitor_config_id" yaml:"monitor_config_id" toml:"monitor_config_id"`
	MonitorDeviceID  string `json:"monitor_device_id" yaml:"monitor_device_id" toml:"monitor_device_id"`
}

// ValorantConfig lista as contas gerenciadas.
type ValorantConfig struct {
	UserIDs []string `json:"user_ids" yaml:"user_ids" toml:"user_ids"`
}

// PathsConfig contém os caminhos do cliente e das configurações por conta.
type PathsConfig struct {
	RiotClientExe     string `json:"riot_client_exe" yaml:"riot_client_exe" toml:"riot_client_exe"`
	ValorantConfigDir string `json:"valorant_config_dir" yaml:"valorant_config_dir" toml:"valorant_config_dir"`
	ConfigSubpath     string `json:"config_subpath" yaml:"config_subpath" toml:"config_subpath"`
}

// MonitorID retorna o identificador gravado em DefaultMonitorDeviceID.
// monitor_config_id tem precedência; monitor_device_id é aceito como alternativa.
func (c *Config) MonitorID() string {
	if id := strings.TrimSpace(c.Display.MonitorConfigID); id != "" {
		return id
	}
	return strings.TrimSpace(c.Display.MonitorDeviceID)
}

// Subpath retorna o subcaminho configurado ou o padrão.
func (c *Config) Subpath() string {
	if c.Paths.ConfigSubpath != "" {
		return c.Paths.ConfigSubpath
	}
	return DefaultConfigSubpath
}

// ValidatePatch verifica as chaves exigidas pela atualização dos arquivos de configuração.
func (c *Config) ValidatePatch() error {
	var missing []string
	if c.Display.ResolutionWidth == 0 {
		missing = append(missing, "display.resolution_width")
	}
	if c.Display.ResolutionHeight == 0 {
		missing = append(missing, "display.resolution_height")
	}
	if c.Display.MonitorIndex == nil {
		missing = append(missing, "display.monitor_index")
	}
	if c.MonitorID() == "" {
		missing = append(missing, "display.monitor_config_id")
	}
	var profilesErr *MissingKeysError
	if errors.As(c.ValidateProfiles(), &profilesErr) {
		missing = append(missing, profilesErr.Keys...)
	}
	return missingError(missing)
}

// ValidateProfiles verifica apenas as chaves que localizam os arquivos das contas.
func (c *Config) ValidateProfiles() error {
	var missing []string
	if len(c.Valorant.UserIDs) == 0 {
		missing = append(missing, "valorant.user_ids")
	}
	if strings.TrimSpace(c.Paths.ValorantConfigDir) == "" {
		missing = append(missing, "paths.valorant_config_dir")
	}
	return missingError(missing)
}

// ValidateLaunch verifica todas as chaves exigidas pelo fluxo completo de inicialização.
func (c *Config) ValidateLaunch() error {
	var missing []string
	var patchErr *MissingKeysError
	if errors.As(c.ValidatePatch(), &patchErr) {
		missing = append(missing, patchErr.Keys...)
	}
	if c.Display.RefreshRate == 0 {
		missing = append(missing, "display.refresh_rate")
	}
	if strings.TrimSpace(c.Paths.RiotClientExe) == "" {
		missing = append(missing, "paths.riot_client_exe")
	}
	return missingError(missing)
}

// MissingKeysError lista as chaves ausentes; corresponde a ErrConfigMissing via errors.Is.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfigMissing, strings.Join(e.Keys, ", "))
}

func (e *MissingKeysError) Unwrap() error {
	return ErrConfigMissing
}

func missingError(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return &MissingKeysError{Keys: keys}
}
