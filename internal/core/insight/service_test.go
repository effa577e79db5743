package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

type fakeProvider struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeProvider) GenerateResponse(_ context.Context, systemPrompt, userMessage string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userMessage
	return f.reply, f.err
}

func (f *fakeProvider) GetProviderName() string { return "fake" }

func summary(t *testing.T) *harvest.Summary {
	t.Helper()
	records := []harvest.Record{
		{Country: "Kenya", Admin1: "Nyanza", Product: "Sorghum", SeasonName: "Long rains", PlantingMonth: "March", HarvestMonth: "August", PlantingYear: harvest.Year(2017), Production: 200, Area: 100},
		{Country: "Kenya", Admin1: "Nyanza", Product: "Maize", SeasonName: "Long rains", PlantingYear: harvest.Year(2019), Production: 900, Area: 300},
	}
	s, ok := harvest.Summarize(records, harvest.Selection{Country: "Kenya"})
	require.True(t, ok)
	return s
}

func TestNarrateDisabled(t *testing.T) {
	svc := NewService("", "", "")
	assert.False(t, svc.Enabled())

	_, err := svc.Narrate(context.Background(), summary(t))
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNarrate(t *testing.T) {
	fake := &fakeProvider{reply: "  Maize dominates.\n"}
	svc := NewServiceWithProvider(fake)

	n, err := svc.Narrate(context.Background(), summary(t))
	require.NoError(t, err)
	assert.Equal(t, "Maize dominates.", n.Text)
	assert.Equal(t, "fake", n.Provider)
	assert.Equal(t, "Kenya", n.Selection.Country)

	assert.Equal(t, systemPrompt, fake.lastSystem)
	assert.Contains(t, fake.lastUser, "Area: Kenya (country level)")
	assert.Contains(t, fake.lastUser, "Missing years: 2018")
	assert.Less(t, strings.Index(fake.lastUser, "Maize"), strings.Index(fake.lastUser, "Sorghum"))
}

func TestNarrateProviderError(t *testing.T) {
	svc := NewServiceWithProvider(&fakeProvider{err: errors.New("rate limited")})
	_, err := svc.Narrate(context.Background(), summary(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestBuildUserPromptCapsCrops(t *testing.T) {
	var records []harvest.Record
	for i := 0; i < maxPromptCrops+5; i++ {
		records = append(records, harvest.Record{Country: "Mali", Product: string(rune('A' + i)), Production: float64(i + 1), Area: 1})
	}
	s, ok := harvest.Summarize(records, harvest.Selection{Country: "Mali"})
	require.True(t, ok)

	prompt := BuildUserPrompt(s)
	assert.Contains(t, prompt, "- O: 15 t")
	assert.NotContains(t, prompt, "- A: 1 t")
}
