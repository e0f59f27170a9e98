package usecase

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
)

// %VAR%, ${VAR} ou $VAR, reconhecidos numa única passada para que valores
// expandidos não sejam expandidos de novo.
var envRefRegex = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%|\$\{([^}]+)\}|\$(\w+)`)

// ExpandPath expande referências %VAR%, ${VAR} e $VAR. Variáveis inexistentes
// permanecem no texto exatamente como estavam.
func ExpandPath(p string) string {
	return envRefRegex.ReplaceAllStringFunc(p, func(ref string) string {
		m := envRefRegex.FindStringSubmatch(ref)
		name := m[1] + m[2] + m[3]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return ref
	})
}

// ResolveProfiles monta um Profile por conta, na ordem recebida e sem remover duplicatas.
func ResolveProfiles(baseDir, subpath string, accountIDs []string) []entity.Profile {
	base := ExpandPath(baseDir)
	sub := filepath.FromSlash(subpath)

	profiles := make([]entity.Profile, 0, len(accountIDs))
	for _, id := range accountIDs {
		profiles = append(profiles, entity.Profile{
			AccountID: id,
			FilePath:  filepath.Join(base, id, sub),
		})
	}
	return profiles
}
