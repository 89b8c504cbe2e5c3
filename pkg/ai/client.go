// pkg/ai/client.go

package ai

import (
	"cropplan/entities"
	"cropplan/pkg/recommend"
)

type Client interface {
	// SummarizePlan renders a short Markdown summary of a recommendation run.
	// It never fails; implementations fall back to a local summary.
	SummarizePlan(f *entities.Field, list *recommend.RankedList) string
}

// New picks the OpenAI-compatible client when an endpoint and key are set.
func New(endpoint, key, model string) Client {
	if endpoint != "" && key != "" {
		return NewOpenAI(endpoint, key, model)
	}
	return NewMock()
}
