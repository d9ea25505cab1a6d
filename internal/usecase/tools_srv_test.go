package usecase

import (
	"context"
	"testing"

	"business-buddy/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCalculateProfit(t *testing.T) {
	ctx := context.Background()
	svc := NewToolsService(zap.NewNop())

	t.Run("PositiveMargin", func(t *testing.T) {
		resp := svc.CalculateProfit(ctx, &request.ProfitCalcRequest{Revenue: 1000, Costs: 600})
		assert.Equal(t, 400.0, resp.Profit)
		assert.InDelta(t, 40.0, resp.Margin, 0.001)
	})

	t.Run("ZeroRevenueZeroMargin", func(t *testing.T) {
		resp := svc.CalculateProfit(ctx, &request.ProfitCalcRequest{Revenue: 0, Costs: 250})
		assert.Equal(t, -250.0, resp.Profit)
		assert.Equal(t, 0.0, resp.Margin)
	})
}

func TestCalculateCashFlow(t *testing.T) {
	svc := NewToolsService(zap.NewNop())

	resp := svc.CalculateCashFlow(context.Background(), &request.CashFlowCalcRequest{Income: 5000, Expenses: 3200})
	assert.Equal(t, 1800.0, resp.CashFlow)
}

func TestWhatsAppMessage(t *testing.T) {
	ctx := context.Background()
	svc := NewToolsService(zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.WhatsAppMessage(ctx, &request.MarketingTemplateRequest{
			BusinessName: "Thandi's Tuck Shop",
			Service:      "Cold drinks and snacks",
			Location:     "Soweto",
			Contact:      "071 000 0000",
			Special:      "2 for 1 weekends",
		})
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "Thandi's Tuck Shop")
		assert.Contains(t, resp.Message, "Cold drinks and snacks - 2 for 1 weekends")
		assert.Contains(t, resp.Message, "#Thandi'sTuckShop")
		assert.Contains(t, resp.Message, "Contact: 071 000 0000")
	})

	t.Run("NoSpecial", func(t *testing.T) {
		resp, err := svc.WhatsAppMessage(ctx, &request.MarketingTemplateRequest{
			BusinessName: "Shop",
			Service:      "Snacks",
			Location:     "Soweto",
		})
		require.NoError(t, err)
		assert.NotContains(t, resp.Message, " - ")
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := svc.WhatsAppMessage(ctx, &request.MarketingTemplateRequest{Service: "Snacks"})
		require.Error(t, err)
		assert.Equal(t, "Missing required fields: businessName, location", err.Error())
	})
}

func TestSocialCaption(t *testing.T) {
	svc := NewToolsService(zap.NewNop())

	resp, err := svc.SocialCaption(context.Background(), &request.MarketingTemplateRequest{
		BusinessName: "Shop",
		Service:      "Snacks",
		Location:     "Cape Town",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Caption, "Proud to support Shop in Cape Town")
	assert.Contains(t, resp.Caption, "#CapeTown")
}

func TestHashtag(t *testing.T) {
	cases := map[string]string{
		"Thandi's Tuck Shop":    "Thandi'sTuckShop",
		"Cape\tTown":            "CapeTown",
		"Spaza\nShop  Central":  "SpazaShopCentral",
		" padded  everywhere  ": "paddedeverywhere",
	}
	for phrase, want := range cases {
		assert.Equal(t, want, hashtag(phrase), phrase)
	}
}

func TestPosterTemplates(t *testing.T) {
	svc := NewToolsService(zap.NewNop())

	resp := svc.PosterTemplates(context.Background())
	require.Len(t, resp.Templates, 3)
	assert.Equal(t, "Tuck Shop Special", resp.Templates[0].Title)
}
