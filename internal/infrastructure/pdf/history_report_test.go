package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kondate-api/internal/application/history"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

func TestFormatYen(t *testing.T) {
	assert.Equal(t, "¥0", formatYen(0))
	assert.Equal(t, "¥750", formatYen(750))
	assert.Equal(t, "¥1,250", formatYen(1250))
	assert.Equal(t, "¥1,000,000", formatYen(1000000))
	assert.Equal(t, "-¥3,000", formatYen(-3000))
}

func TestUsageSummary(t *testing.T) {
	s := usageSummary([]entity.IngredientUsage{
		{Name: "chicken", Quantity: decimal.NewFromInt(300), Unit: "g"},
		{Name: "egg", Quantity: decimal.NewFromInt(2), Unit: "pc"},
	})
	assert.Equal(t, "chicken 300g, egg 2pc", s)
}

func TestHistoryReportGenerator_Render(t *testing.T) {
	g := NewHistoryReportGenerator("")
	out, err := g.Render(history.Report{
		Month: "2024-05",
		Entries: []entity.HistoryEntry{
			{Date: "2024-05-01", MealTime: "dinner", Dish: entity.Dish{Name: "Chicken saute", Price: 750}},
		},
		Total:       750,
		GeneratedAt: time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}
