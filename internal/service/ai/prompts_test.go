package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"smartnotes/internal/model"
	"smartnotes/internal/service/ai"
)

func TestGetInstruction_KnownModes(t *testing.T) {
	require.Contains(t, ai.GetInstruction(model.ModeShort), "3-5 kalimat")
	require.Contains(t, ai.GetInstruction(model.ModeBullets), "poin-poin bullet")
	require.Contains(t, ai.GetInstruction(model.ModeActionItems), "action items")
}

func TestGetInstruction_FallbackForUnknownAndEmpty(t *testing.T) {
	require.Equal(t, ai.FallbackInstruction, ai.GetInstruction(""))
	require.Equal(t, ai.FallbackInstruction, ai.GetInstruction("Short"))
	require.Equal(t, ai.FallbackInstruction, ai.GetInstruction(" bullets"))
	require.Equal(t, ai.FallbackInstruction, ai.GetInstruction("paragraph"))
}

func TestGetInstruction_Distinct(t *testing.T) {
	seen := map[string]model.Mode{}
	for _, mode := range []model.Mode{model.ModeShort, model.ModeBullets, model.ModeActionItems, "other"} {
		instruction := ai.GetInstruction(mode)
		_, dup := seen[instruction]
		require.False(t, dup, "mode %q shares an instruction", mode)
		seen[instruction] = mode
	}
}

func TestGetInstruction_TotalAndDeterministic(t *testing.T) {
	templates := map[string]bool{
		ai.GetInstruction(model.ModeShort):       true,
		ai.GetInstruction(model.ModeBullets):     true,
		ai.GetInstruction(model.ModeActionItems): true,
		ai.FallbackInstruction:                   true,
	}

	rapid.Check(t, func(rt *rapid.T) {
		mode := model.Mode(rapid.String().Draw(rt, "mode"))
		first := ai.GetInstruction(mode)
		if !templates[first] {
			rt.Fatalf("mode %q produced an unknown instruction %q", mode, first)
		}
		if first != ai.GetInstruction(mode) {
			rt.Fatalf("mode %q is not deterministic", mode)
		}
		if !mode.Known() && first != ai.FallbackInstruction {
			rt.Fatalf("unknown mode %q did not fall back", mode)
		}
	})
}

func TestBuildPrompt_Layout(t *testing.T) {
	prompt := ai.BuildPrompt(model.ModeShort, "  rapat jam 9\n<b>tidak di-escape</b>  ")
	require.Equal(t,
		ai.GetInstruction(model.ModeShort)+"\n\nTeks:\n  rapat jam 9\n<b>tidak di-escape</b>  ",
		prompt,
	)
}

func TestBuildPrompt_NoTruncation(t *testing.T) {
	text := strings.Repeat("catatan ", 50_000)
	prompt := ai.BuildPrompt("", text)
	require.True(t, strings.HasPrefix(prompt, ai.FallbackInstruction+"\n\nTeks:\n"))
	require.True(t, strings.HasSuffix(prompt, text))
}

func TestSystemPrompt(t *testing.T) {
	require.Equal(t, "Kamu adalah asisten yang ahli merangkum teks.", ai.SystemPrompt)
}
