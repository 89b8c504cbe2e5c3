// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"cropplan/entities"
	"cropplan/pkg/recommend"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model, httpc: &http.Client{Timeout: 25 * time.Second}}
}

func (c *openAI) SummarizePlan(f *entities.Field, list *recommend.RankedList) string {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are an agronomist who writes concise, actionable crop plan summaries in Markdown."},
			{"role": "user", "content": renderSummaryPrompt(f, list)},
		},
		Temperature: 0.2,
	}

	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return fallbackSummary(f, list)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("[ai] summarize: %v", err)
		return fallbackSummary(f, list)
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Choices) == 0 {
		return fallbackSummary(f, list)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return fallbackSummary(f, list)
	}
	return content
}

func renderSummaryPrompt(f *entities.Field, list *recommend.RankedList) string {
	var sb strings.Builder
	for _, r := range list.Recommendations {
		fmt.Fprintf(&sb, "- #%d %s score=%.2f area=%.2fha risk=%s profit/ha=%.0f\n",
			r.Rank, r.CropID, r.SuitabilityScore, r.AllocatedAreaHa, r.Risk, r.Profitability.ProfitPerHa)
	}
	return fmt.Sprintf(`
Summarise this crop plan in at most 8 Markdown bullet points. Be specific: crops, hectares, water use.
Mention the main risk and a fallback crop if any recommendation is high risk.

FIELD: #%d %s, %.2f ha, soil %s, water quota %.0f mm, season %s

RECOMMENDATIONS:
%s
ALLOCATION: status=%s total_profit=%.0f water_used=%.0f mm
NOTES: %s
`, f.FieldID, f.Name, f.AreaHa, f.SoilTexture, list.WaterQuotaMM, list.Season,
		sb.String(), list.Allocation.Status, list.Allocation.TotalProfit, list.Allocation.TotalWaterUsedMM, list.Message)
}

func fallbackSummary(f *entities.Field, list *recommend.RankedList) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Crop plan summary**\n\n- Field #%d, %.2f ha, water quota %.0f mm (%s)\n",
		f.FieldID, f.AreaHa, list.WaterQuotaMM, list.Season)
	if len(list.Recommendations) == 0 {
		sb.WriteString("- No crop could be recommended for this field\n")
		return sb.String()
	}
	top := list.Recommendations[0]
	fmt.Fprintf(&sb, "- Best fit: %s (score %.2f, %s risk)\n", top.CropID, top.SuitabilityScore, top.Risk)

	ids := make([]string, 0, len(list.Allocation.Allocations))
	for id := range list.Allocation.Allocations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(&sb, "- Plant %s on %.2f ha\n", id, list.Allocation.Allocations[id])
	}
	fmt.Fprintf(&sb, "- Allocation %s, expected profit %.0f, water use %.0f mm\n",
		list.Allocation.Status, list.Allocation.TotalProfit, list.Allocation.TotalWaterUsedMM)
	return sb.String()
}
