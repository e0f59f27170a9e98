package usecase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
	"github.com/diillson/valorant-launcher-go/internal/shared/types"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("VL_TEST_ROOT", "/games")
	t.Setenv("VL_TEST_NESTED", "$VL_TEST_ROOT")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows style", "%VL_TEST_ROOT%/VALORANT", "/games/VALORANT"},
		{"unix style", "$VL_TEST_ROOT/VALORANT", "/games/VALORANT"},
		{"braces", "${VL_TEST_ROOT}/VALORANT", "/games/VALORANT"},
		{"unknown windows variable", "%VL_TEST_UNSET%/VALORANT", "%VL_TEST_UNSET%/VALORANT"},
		{"unknown braced variable", "${VL_TEST_UNSET}/VALORANT", "${VL_TEST_UNSET}/VALORANT"},
		{"no variables", "/opt/riot", "/opt/riot"},
		{"unknown unix variable", `D:\games\$riot\cfg`, `D:\games\$riot\cfg`},
		{"dollar before punctuation", `D:\a$-b\cfg`, `D:\a$-b\cfg`},
		{"dollar before digit", `D:\x\$1\cfg`, `D:\x\$1\cfg`},
		{"lone dollar", "/opt/$/riot", "/opt/$/riot"},
		{"expanded value is not expanded again", "%VL_TEST_NESTED%/x", "$VL_TEST_ROOT/x"},
		{"mixed", "%VL_TEST_ROOT%/$VL_TEST_UNSET/${VL_TEST_ROOT}", "/games/$VL_TEST_UNSET//games"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestResolveProfiles(t *testing.T) {
	t.Setenv("VL_TEST_ROOT", "/games")

	profiles := ResolveProfiles("%VL_TEST_ROOT%/Config", types.DefaultConfigSubpath, []string{"b", "a", "b"})

	file := filepath.Join("WindowsClient", "GameUserSettings.ini")
	assert.Equal(t, []entity.Profile{
		{AccountID: "b", FilePath: filepath.Join("/games/Config", "b", file)},
		{AccountID: "a", FilePath: filepath.Join("/games/Config", "a", file)},
		{AccountID: "b", FilePath: filepath.Join("/games/Config", "b", file)},
	}, profiles)

	assert.Empty(t, ResolveProfiles("/x", types.DefaultConfigSubpath, nil))
}
