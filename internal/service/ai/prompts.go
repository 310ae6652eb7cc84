package ai

import (
	"strings"

	"smartnotes/internal/model"
)

// SystemPrompt is sent as the system message of every completion.
const SystemPrompt = "Kamu adalah asisten yang ahli merangkum teks."

// FallbackInstruction is used for any mode outside the known set.
const FallbackInstruction = "Ringkas teks berikut secara singkat dan jelas."

var instructions = map[model.Mode]string{
	model.ModeShort:       "Ringkas teks berikut menjadi 3-5 kalimat yang jelas dan padat dalam bahasa Indonesia.",
	model.ModeBullets:     "Ringkas teks berikut menjadi poin-poin bullet yang rapi dalam bahasa Indonesia.",
	model.ModeActionItems: "Dari teks berikut, tuliskan hanya hal-hal yang harus dilakukan (action items) dalam bentuk bullet dalam bahasa Indonesia.",
}

// GetInstruction returns the instruction for mode. Matching is exact, so
// "Short" or " short" get the fallback.
func GetInstruction(mode model.Mode) string {
	if instruction, ok := instructions[mode]; ok {
		return instruction
	}
	return FallbackInstruction
}

// BuildPrompt composes the user message: instruction, a blank line, the
// "Teks:" label and the text exactly as submitted.
func BuildPrompt(mode model.Mode, text string) string {
	var b strings.Builder
	instruction := GetInstruction(mode)
	b.Grow(len(instruction) + len(text) + 8)
	b.WriteString(instruction)
	b.WriteString("\n\nTeks:\n")
	b.WriteString(text)
	return b.String()
}
