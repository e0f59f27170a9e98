package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFileName é o arquivo procurado ao lado do executável.
const DefaultConfigFileName = "config.ini"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// DefaultConfigPath retorna config.ini no diretório do executável,
// ou no diretório atual se o executável não puder ser localizado.
func DefaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultConfigFileName)
}

// LoadConfigFile carrega um arquivo de configuração INI, TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".ini":
		if err := decodeINI(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing INI file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	config.Valorant.UserIDs = normalizeUserIDs(config.Valorant.UserIDs)
	return &config, nil
}

// decodeINI lê o layout de config.ini com as seções [display], [valorant] e [paths].
// Comentários inline ficam desabilitados porque IDs de monitor contêm '#'.
func decodeINI(data []byte, config *types.Config) error {
	file, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:                true,
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
	}, data)
	if err != nil {
		return err
	}

	display := file.Section("display")
	uints := []struct {
		key string
		dst *uint
	}{
		{"resolution_width", &config.Display.ResolutionWidth},
		{"resolution_height", &config.Display.ResolutionHeight},
		{"refresh_rate", &config.Display.RefreshRate},
	}
	for _, u := range uints {
		if !display.HasKey(u.key) {
			continue
		}
		v, err := display.Key(u.key).Uint()
		if err != nil {
			return fmt.Errorf("display.%s: %w", u.key, err)
		}
		*u.dst = v
	}
	if display.HasKey("monitor_index") {
		v, err := display.Key("monitor_index").Uint()
		if err != nil {
			return fmt.Errorf("display.monitor_index: %w", err)
		}
		config.Display.MonitorIndex = &v
	}
	config.Display.MonitorConfigID = strings.TrimSpace(display.Key("monitor_config_id").String())
	config.Display.MonitorDeviceID = strings.TrimSpace(display.Key("monitor_device_id").String())

	rawIDs := strings.ReplaceAll(file.Section("valorant").Key("user_ids").String(), "\n", "")
	config.Valorant.UserIDs = strings.Split(rawIDs, ",")

	paths := file.Section("paths")
	config.Paths.RiotClientExe = strings.TrimSpace(paths.Key("riot_client_exe").String())
	config.Paths.ValorantConfigDir = strings.TrimSpace(paths.Key("valorant_config_dir").String())
	config.Paths.ConfigSubpath = strings.TrimSpace(paths.Key("config_subpath").String())
	return nil
}

func normalizeUserIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
