package patch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

type ruleSpec struct {
	key   string
	shape ValueShape
	kind  RuleKind
	value func(entity.TargetValues) string
}

func constant(v string) func(entity.TargetValues) string {
	return func(entity.TargetValues) string { return v }
}

func width(t entity.TargetValues) string        { return strconv.FormatUint(uint64(t.Width), 10) }
func height(t entity.TargetValues) string       { return strconv.FormatUint(uint64(t.Height), 10) }
func monitorIndex(t entity.TargetValues) string { return strconv.FormatUint(uint64(t.MonitorIndex), 10) }
func monitorID(t entity.TargetValues) string    { return `"` + t.MonitorDeviceID + `"` }

// Fullscreen: 0=fullscreen, 1=borderless, 2=windowed.
// Only the fullscreen and letterbox keys fall back to appending; resolution and
// monitor keys are never added to a file that lacks them.
var defaultRuleSpecs = []ruleSpec{
	{"FullscreenMode", IntValue, FallbackEligible, constant("0")},
	{"LastConfirmedFullscreenMode", IntValue, FallbackEligible, constant("0")},
	{"PreferredFullscreenMode", IntValue, FallbackEligible, constant("0")},

	{"bLastConfirmedShouldLetterbox", BoolValue, FallbackEligible, constant("False")},
	{"bShouldLetterbox", BoolValue, FallbackEligible, constant("False")},

	{"ResolutionSizeX", IntValue, SubstituteOnly, width},
	{"ResolutionSizeY", IntValue, SubstituteOnly, height},
	{"LastUserConfirmedResolutionSizeX", IntValue, SubstituteOnly, width},
	{"LastUserConfirmedResolutionSizeY", IntValue, SubstituteOnly, height},
	{"DesiredScreenWidth", IntValue, SubstituteOnly, width},
	{"DesiredScreenHeight", IntValue, SubstituteOnly, height},
	{"LastUserConfirmedDesiredScreenWidth", IntValue, SubstituteOnly, width},
	{"LastUserConfirmedDesiredScreenHeight", IntValue, SubstituteOnly, height},

	{"DefaultMonitorDeviceID", QuotedValue, SubstituteOnly, monitorID},
	{"DefaultMonitorIndex", IntValue, SubstituteOnly, monitorIndex},
	{"LastConfirmedDefaultMonitorDeviceID", QuotedValue, SubstituteOnly, monitorID},
	{"LastConfirmedDefaultMonitorIndex", IntValue, SubstituteOnly, monitorIndex},
}

// VerifyKeys são as chaves exibidas após a atualização para conferência manual.
var VerifyKeys = []string{"FullscreenMode", "ResolutionSizeX", "ResolutionSizeY", "bShouldLetterbox"}

// ValidateTarget rejeita valores que produziriam um arquivo estruturalmente inválido.
func ValidateTarget(t entity.TargetValues) error {
	var problems []string
	if t.Width == 0 {
		problems = append(problems, "width must be greater than zero")
	}
	if t.Height == 0 {
		problems = append(problems, "height must be greater than zero")
	}
	if strings.TrimSpace(t.MonitorDeviceID) == "" {
		problems = append(problems, "monitor device id is empty")
	}
	if strings.ContainsAny(t.MonitorDeviceID, "\"\r\n") {
		problems = append(problems, "monitor device id contains a quote or line break")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", types.ErrInvalidTarget, strings.Join(problems, "; "))
	}
	return nil
}

// BuildRuleSet resolve as regras padrão uma única vez para o lote inteiro.
func BuildRuleSet(t entity.TargetValues) ([]PatchRule, error) {
	if err := ValidateTarget(t); err != nil {
		return nil, err
	}

	rules := make([]PatchRule, 0, len(defaultRuleSpecs))
	for _, rs := range defaultRuleSpecs {
		rule, err := NewRule(rs.key, rs.shape, rs.value(t), rs.kind)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
