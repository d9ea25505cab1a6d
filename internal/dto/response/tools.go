package response

type ProfitCalcResponse struct {
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"`
}

type CashFlowCalcResponse struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	CashFlow float64 `json:"cashFlow"`
}

type WhatsAppMessageResponse struct {
	Message string `json:"message"`
}

type SocialCaptionResponse struct {
	Caption string `json:"caption"`
}

type PosterTemplate struct {
	Title    string `json:"title"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
	Note     string `json:"note"`
}

type PosterTemplateListResponse struct {
	Templates []PosterTemplate `json:"templates"`
}
