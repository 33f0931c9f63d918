package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/AduSharma/CrickStatX/internal/service"
)

const askSystemPrompt = `You are a cricket statistics analyst. You are given structured career data
for one or more international cricketers and a question about them.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Several players may match an ambiguous name; say which one you mean.
- Be concise.

Column glossary:
- Mat/Inns: matches and innings. NO: not outs. HS: highest score (* = not out).
- Ave: batting average (runs per dismissal) or bowling average (runs per wicket).
- SR: batting strike rate (runs per 100 balls) or bowling strike rate (balls per wicket).
- Econ: runs conceded per over. BBI: best bowling in an innings.
- 100/50: centuries and half-centuries. 4s/6s: boundaries.
- 4/5/10: four-wicket innings, five-wicket innings, ten-wicket matches.
- Dis: total dismissals as fielder. Ct: catches. St: stumpings. D/I: dismissals per innings.
- Span: first and last year played. CareerLength: years between them.`

var (
	askModel  string
	askAPIKey string
)

var askCmd = &cobra.Command{
	Use:   "ask <player name> <question>",
	Short: "AI-powered grounded Q&A about a player (requires ANTHROPIC_API_KEY)",
	Args:  cobra.ExactArgs(2),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	askCmd.Flags().StringVar(&askAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	contextJSON, err := buildPlayerContext(svc, args[0])
	if err != nil {
		return err
	}
	return callAnthropic(cmd.Context(), os.Stdout, askAPIKey, askModel, contextJSON, args[1])
}

// buildPlayerContext serialises everything known about the matched players
// into compact JSON.
func buildPlayerContext(svc *service.Service, name string) (string, error) {
	summaries, err := svc.Analyze(name)
	if err != nil {
		return "", fmt.Errorf("analyze %q: %w", name, err)
	}
	tags, err := svc.Tags(name)
	if err != nil {
		return "", fmt.Errorf("tags %q: %w", name, err)
	}
	profile, err := svc.Profile(name)
	if err != nil {
		return "", fmt.Errorf("profile %q: %w", name, err)
	}
	doc := map[string]any{
		"query":    name,
		"analysis": summaries,
		"tags":     tags,
		"rows":     profile.Profile,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal context: %w", err)
	}
	return string(b), nil
}

// callAnthropic streams a response from the Anthropic API and prints it to w.
func callAnthropic(ctx context.Context, w io.Writer, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(w, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: askSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(w, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(w, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed: check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
