package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/devlog-app/backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Static fallbacks returned when no model is configured or a call fails.
// AI output is best-effort and must never surface an error to the caller.
const disabledSummary = "AI features are disabled."

// SummaryResult is the response shape for journal summaries
type SummaryResult struct {
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
}

// NextStepsResult is the response shape for learning suggestions
type NextStepsResult struct {
	Suggestions []string `json:"suggestions"`
}

// AIClient talks to the external language-model collaborator. A client with
// no configured model is valid and answers with static defaults.
type AIClient struct {
	llm    llms.Model
	logger zerolog.Logger
}

// NewAIClient builds a client backed by OpenAI when OPENAI_API_KEY is set,
// and a fallback-only client otherwise.
func NewAIClient() *AIClient {
	logger := log.With().Str("serviceName", "aiClient").Logger()
	client := &AIClient{logger: logger}

	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Info().Msg("OPENAI_API_KEY not set, AI endpoints serve static fallbacks")
		return client
	}

	llm, err := openai.New()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize OpenAI client, serving static fallbacks")
		return client
	}

	client.llm = llm
	return client
}

// Enabled reports whether a real model backs this client
func (c *AIClient) Enabled() bool {
	return c.llm != nil
}

// Summarize produces a short summary of the given entries plus bullet
// insights. timeRange is "daily" or "weekly" and only flavors the prompt.
func (c *AIClient) Summarize(ctx context.Context, entries []database.EnrichedEntry, timeRange string) SummaryResult {
	fallback := SummaryResult{Summary: disabledSummary, Insights: []string{}}
	if c.llm == nil || len(entries) == 0 {
		return fallback
	}

	prompt := buildSummaryPrompt(entries, timeRange)
	output, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Summary generation failed, serving static fallback")
		return fallback
	}

	summary, insights := splitSummaryOutput(output)
	return SummaryResult{Summary: summary, Insights: insights}
}

// SuggestNextSteps proposes what to learn next based on recent entries
func (c *AIClient) SuggestNextSteps(ctx context.Context, entries []database.EnrichedEntry) NextStepsResult {
	fallback := NextStepsResult{Suggestions: []string{}}
	if c.llm == nil || len(entries) == 0 {
		return fallback
	}

	prompt := buildNextStepsPrompt(entries)
	output, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Next-step generation failed, serving static fallback")
		return fallback
	}

	return NextStepsResult{Suggestions: parseBulletLines(output)}
}

func buildSummaryPrompt(entries []database.EnrichedEntry, timeRange string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are reviewing a developer's %s learning journal. Entries:\n\n", timeRange)
	writeEntryDigest(&b, entries)
	b.WriteString("\nWrite one short paragraph summarizing what was learned, ")
	b.WriteString("followed by up to three insights, each on its own line starting with \"- \".")
	return b.String()
}

func buildNextStepsPrompt(entries []database.EnrichedEntry) string {
	var b strings.Builder
	b.WriteString("A developer keeps a learning journal. Recent entries:\n\n")
	writeEntryDigest(&b, entries)
	b.WriteString("\nSuggest three concrete next things to learn or practice, ")
	b.WriteString("each on its own line starting with \"- \".")
	return b.String()
}

func writeEntryDigest(b *strings.Builder, entries []database.EnrichedEntry) {
	for _, entry := range entries {
		fmt.Fprintf(b, "- %s: %s", entry.Date.Format("2006-01-02"), entry.Content)
		if entry.Bug != nil && *entry.Bug != "" {
			fmt.Fprintf(b, " (bug: %s", *entry.Bug)
			if entry.Solution != nil && *entry.Solution != "" {
				fmt.Fprintf(b, "; solved: %s", *entry.Solution)
			}
			b.WriteString(")")
		}
		if len(entry.Tags) > 0 {
			fmt.Fprintf(b, " [%s]", strings.Join(entry.Tags, ", "))
		}
		b.WriteString("\n")
	}
}

// splitSummaryOutput separates the leading paragraph from trailing bullet lines
func splitSummaryOutput(output string) (string, []string) {
	var summary []string
	insights := []string{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			insights = append(insights, strings.TrimSpace(strings.TrimLeft(line, "-* ")))
			continue
		}
		summary = append(summary, line)
	}
	return strings.Join(summary, " "), insights
}

// parseBulletLines extracts non-empty lines, stripping bullet markers
func parseBulletLines(output string) []string {
	lines := []string{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if len(line) > 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' {
			line = strings.TrimSpace(line[2:])
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
