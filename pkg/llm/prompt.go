package llm

import (
	"fmt"
	"strings"
)

const briefSystemPrompt = `You are a market analyst writing a short daily brief about AI-related news.

Rules:
1. Write exactly one paragraph, at most 80 words.
2. Mention only companies and topics present in the input headlines.
3. Neutral tone. No advice, no predictions, no urgency words.
4. Plain text only, no markdown, no bullet points.`

func formatBriefInput(inputs []BriefInput) string {
	var sb strings.Builder
	for i, h := range inputs {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s", i+1, h.Topic, h.Title))
		if h.Publisher != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", h.Publisher))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
