package usecase

import (
	"context"
	"fmt"
	"strings"

	"business-buddy/internal/dto/request"
	"business-buddy/internal/dto/response"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

// ToolsService backs the static calculators and marketing template
// generators. Everything here is pure computation over the request.
type ToolsService interface {
	CalculateProfit(ctx context.Context, req *request.ProfitCalcRequest) *response.ProfitCalcResponse
	CalculateCashFlow(ctx context.Context, req *request.CashFlowCalcRequest) *response.CashFlowCalcResponse
	WhatsAppMessage(ctx context.Context, req *request.MarketingTemplateRequest) (*response.WhatsAppMessageResponse, error)
	SocialCaption(ctx context.Context, req *request.MarketingTemplateRequest) (*response.SocialCaptionResponse, error)
	PosterTemplates(ctx context.Context) *response.PosterTemplateListResponse
}

type toolsService struct {
	log *zap.Logger
}

func NewToolsService(log *zap.Logger) ToolsService {
	return &toolsService{
		log: log.With(zap.String("service", "tools")),
	}
}

func (s *toolsService) CalculateProfit(_ context.Context, req *request.ProfitCalcRequest) *response.ProfitCalcResponse {
	profit := req.Revenue - req.Costs

	margin := 0.0
	if req.Revenue > 0 {
		margin = profit / req.Revenue * 100
	}

	return &response.ProfitCalcResponse{
		Revenue: req.Revenue,
		Costs:   req.Costs,
		Profit:  profit,
		Margin:  margin,
	}
}

func (s *toolsService) CalculateCashFlow(_ context.Context, req *request.CashFlowCalcRequest) *response.CashFlowCalcResponse {
	return &response.CashFlowCalcResponse{
		Income:   req.Income,
		Expenses: req.Expenses,
		CashFlow: req.Income - req.Expenses,
	}
}

func (s *toolsService) WhatsAppMessage(_ context.Context, req *request.MarketingTemplateRequest) (*response.WhatsAppMessageResponse, error) {
	if err := validateTemplateRequest(req); err != nil {
		return nil, err
	}

	service := req.Service
	if req.Special != "" {
		service += " - " + req.Special
	}

	message := fmt.Sprintf(`🌟 %s 🌟

%s

📍 %s
📱 Contact: %s

#SupportLocal #%s #Mzansi`,
		req.BusinessName, service, req.Location, req.Contact, hashtag(req.BusinessName))

	return &response.WhatsAppMessageResponse{Message: message}, nil
}

func (s *toolsService) SocialCaption(_ context.Context, req *request.MarketingTemplateRequest) (*response.SocialCaptionResponse, error) {
	if err := validateTemplateRequest(req); err != nil {
		return nil, err
	}

	caption := fmt.Sprintf(`🚀 Growing our community, one business at a time!

Proud to support %s in %s 💪

%s

Tag a friend who needs to know about this! 👇

#SupportLocal #SMME #SouthAfrica #CommunityFirst #%s`,
		req.BusinessName, req.Location, req.Service, hashtag(req.Location))

	return &response.SocialCaptionResponse{Caption: caption}, nil
}

func (s *toolsService) PosterTemplates(_ context.Context) *response.PosterTemplateListResponse {
	return &response.PosterTemplateListResponse{
		Templates: []response.PosterTemplate{
			{
				Title:    "Tuck Shop Special",
				Headline: "Weekend Special! 🎉",
				Body:     "2 for 1 on all cold drinks!",
				Note:     "Valid Sat-Sun only",
			},
			{
				Title:    "Hair Salon Promo",
				Headline: "New Year, New Look! ✨",
				Body:     "Book now for January specials",
				Note:     "Call to book your slot",
			},
			{
				Title:    "Food Business",
				Headline: "Fresh Daily! 🍽️",
				Body:     "Home-cooked meals ready",
				Note:     "Order before 2pm",
			},
		},
	}
}

func validateTemplateRequest(req *request.MarketingTemplateRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		if missing := utils.MissingFields(errs); len(missing) > 0 {
			return fmt.Errorf("%s", utils.MissingFieldsMessage(missing))
		}
	}
	return nil
}

// hashtag collapses a phrase into a single hashtag token, stripping all
// whitespace runs
func hashtag(phrase string) string {
	return strings.Join(strings.Fields(phrase), "")
}
