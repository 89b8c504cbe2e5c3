// pkg/ai/mock_client.go

package ai

import (
	"cropplan/entities"
	"cropplan/pkg/recommend"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) SummarizePlan(f *entities.Field, list *recommend.RankedList) string {
	return fallbackSummary(f, list)
}
