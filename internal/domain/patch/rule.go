// Package patch aplica sobrescritas chave=valor em arquivos de configuração
// orientados a linha, preservando byte a byte todo o conteúdo não gerenciado.
package patch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedRule indica uma regra que não pode ser aplicada com segurança.
var ErrMalformedRule = errors.New("malformed patch rule")

// RuleKind define o comportamento de uma regra quando a chave está ausente.
type RuleKind int

const (
	// SubstituteOnly atualiza ocorrências existentes e não faz nada se a chave não existir.
	SubstituteOnly RuleKind = iota
	// FallbackEligible atualiza ocorrências existentes ou acrescenta a linha padrão ao final.
	FallbackEligible
)

func (k RuleKind) String() string {
	switch k {
	case SubstituteOnly:
		return "substitute-only"
	case FallbackEligible:
		return "fallback-eligible"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// ValueShape é o fragmento de regex que reconhece o valor atual de uma chave.
type ValueShape string

const (
	IntValue    ValueShape = `-?\d+`
	BoolValue   ValueShape = `\w+`
	QuotedValue ValueShape = `"[^"\r\n]*"`
)

var keyRegex = regexp.MustCompile(`^\w+$`)

// PatchRule é uma sobrescrita declarativa de uma única chave.
//
// Pattern deve ter como primeiro grupo o limite que precede a chave
// (início de linha ou caractere não alfanumérico); esse grupo é reemitido
// intacto e o restante do match é trocado por Replacement.
type PatchRule struct {
	Key         string
	Kind        RuleKind
	Pattern     *regexp.Regexp
	Replacement string
	Fallback    string
}

// NewRule cria uma regra para key com o valor já formatado.
// O valor precisa corresponder ao próprio shape, senão a regra não seria idempotente.
func NewRule(key string, shape ValueShape, value string, kind RuleKind) (PatchRule, error) {
	if !keyRegex.MatchString(key) {
		return PatchRule{}, fmt.Errorf("%w: invalid key %q", ErrMalformedRule, key)
	}
	valueRegex, err := regexp.Compile(`^(?:` + string(shape) + `)$`)
	if err != nil {
		return PatchRule{}, fmt.Errorf("%w: %s: %v", ErrMalformedRule, key, err)
	}
	if !valueRegex.MatchString(value) {
		return PatchRule{}, fmt.Errorf("%w: value %q for %s does not match %s", ErrMalformedRule, value, key, shape)
	}

	pattern, err := regexp.Compile(`(?m)(^|[^\w])` + regexp.QuoteMeta(key) + `=` + string(shape))
	if err != nil {
		return PatchRule{}, fmt.Errorf("%w: %s: %v", ErrMalformedRule, key, err)
	}

	line := key + "=" + value
	return PatchRule{
		Key:         key,
		Kind:        kind,
		Pattern:     pattern,
		Replacement: line,
		Fallback:    line,
	}, nil
}

func (r PatchRule) validate() error {
	switch {
	case r.Key == "":
		return fmt.Errorf("%w: empty key", ErrMalformedRule)
	case r.Pattern == nil:
		return fmt.Errorf("%w: %s has no pattern", ErrMalformedRule, r.Key)
	case r.Pattern.NumSubexp() < 1:
		return fmt.Errorf("%w: %s pattern has no boundary group", ErrMalformedRule, r.Key)
	case r.Replacement == "":
		return fmt.Errorf("%w: %s has no replacement", ErrMalformedRule, r.Key)
	case r.Kind == FallbackEligible && strings.TrimSpace(r.Fallback) == "":
		return fmt.Errorf("%w: %s has no fallback line", ErrMalformedRule, r.Key)
	case strings.ContainsAny(r.Replacement+r.Fallback, "\r\n"):
		return fmt.Errorf("%w: %s spans multiple lines", ErrMalformedRule, r.Key)
	}
	return nil
}

// substitute troca todas as ocorrências e retorna quantas foram encontradas.
func (r PatchRule) substitute(content string) (string, int) {
	matches := r.Pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content) + len(matches)*len(r.Replacement))
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m[0]])
		if m[2] >= 0 {
			b.WriteString(content[m[2]:m[3]])
		}
		b.WriteString(r.Replacement)
		last = m[1]
	}
	b.WriteString(content[last:])
	return b.String(), len(matches)
}
