package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFormatBriefInput(t *testing.T) {
	inputs := []BriefInput{
		{Title: "OpenAI releases new model", Publisher: "Reuters", Topic: "OpenAI"},
		{Title: "Chip demand surges", Topic: "AI chips"},
	}

	got := formatBriefInput(inputs)

	assert.Equal(t, "1. [OpenAI] OpenAI releases new model (Reuters)\n2. [AI chips] Chip demand surges\n", got)
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, "Markets were calm.", cleanResponse("  Markets were calm.\n"))
	assert.Equal(t, "Markets were calm.", cleanResponse("```\nMarkets were calm.\n```"))
}
