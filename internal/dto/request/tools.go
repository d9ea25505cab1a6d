package request

// Calculator inputs mirror the original widgets: absent numbers count as zero.

type ProfitCalcRequest struct {
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
}

type CashFlowCalcRequest struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type MarketingTemplateRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	Service      string `json:"service" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Contact      string `json:"contact"`
	Special      string `json:"special"`
}
