package patch

import (
	"fmt"
	"strings"

	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
)

// Result é o conteúdo final mais o efeito de cada regra, na mesma ordem das regras.
type Result struct {
	Content  string
	Outcomes []entity.PatchOutcome
}

// Apply aplica as regras em sequência sobre o conteúdo em evolução.
// É uma função pura: nada fora de content é lido ou escrito.
func Apply(content string, rules []PatchRule) (Result, error) {
	res := Result{
		Content:  content,
		Outcomes: make([]entity.PatchOutcome, 0, len(rules)),
	}

	for i, rule := range rules {
		if err := rule.validate(); err != nil {
			return Result{}, fmt.Errorf("rule #%d: %w", i, err)
		}

		next, n := rule.substitute(res.Content)
		outcome := entity.PatchOutcome{
			Key:        rule.Key,
			Applied:    n > 0,
			MatchCount: n,
		}
		if n == 0 && rule.Kind == FallbackEligible {
			next = appendLine(next, rule.Fallback)
			outcome.Applied = true
			outcome.Appended = true
		}

		res.Content = next
		res.Outcomes = append(res.Outcomes, outcome)
	}

	return res, nil
}

// appendLine acrescenta line após remover as quebras de linha finais,
// com exatamente uma quebra antes e outra depois.
func appendLine(content, line string) string {
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}
	return strings.TrimRight(content, "\r\n") + eol + line + eol
}

// ExtractLines retorna, na ordem do arquivo, as linhas cuja chave está em keys.
func ExtractLines(content string, keys []string) []string {
	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		key, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if _, found := wanted[strings.TrimSpace(key)]; found {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
