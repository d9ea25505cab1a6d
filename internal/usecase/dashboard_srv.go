package usecase

import (
	"context"

	"business-buddy/internal/dto/response"

	"go.uber.org/zap"
)

// DashboardService serves the two illustrative B2B dashboards. The data is
// mocked; there is no real backend behind these views.
type DashboardService interface {
	Manufacturer(ctx context.Context) *response.ManufacturerDashboardResponse
	Supplier(ctx context.Context) *response.SupplierDashboardResponse
}

type dashboardService struct {
	log *zap.Logger
}

func NewDashboardService(log *zap.Logger) DashboardService {
	return &dashboardService{
		log: log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) Manufacturer(_ context.Context) *response.ManufacturerDashboardResponse {
	return &response.ManufacturerDashboardResponse{
		Stats: []response.StatCard{
			{Title: "Total Products", Value: "24", Change: "+12% from last month"},
			{Title: "Active Orders", Value: "12", Change: "+8% from last month"},
			{Title: "Revenue", Value: "R 245,890", Change: "+18% from last month"},
		},
		RecentOrders: []response.ManufacturerOrder{
			{ID: "ORD-001", Customer: "ABC Retailers", Amount: "R 15,450", Status: "Processing"},
			{ID: "ORD-002", Customer: "XYZ Distributors", Amount: "R 8,900", Status: "Shipped"},
			{ID: "ORD-003", Customer: "Local Store Co", Amount: "R 3,200", Status: "Delivered"},
		},
		Inventory: []response.InventoryItem{
			{Name: "Steel Pipes", Category: "Construction", Stock: 450, Price: "R 125", Status: "In Stock"},
			{Name: "Metal Sheets", Category: "Industrial", Stock: 23, Price: "R 89", Status: "Low Stock"},
			{Name: "Wire Mesh", Category: "Fencing", Stock: 156, Price: "R 45", Status: "In Stock"},
			{Name: "Steel Beams", Category: "Construction", Stock: 0, Price: "R 350", Status: "Out of Stock"},
		},
		Suppliers: []response.SupplierPartner{
			{Name: "Johannesburg Steel Co.", Category: "Raw Materials", Rating: 4.8, Orders: 45},
			{Name: "Cape Town Metals", Category: "Alloys", Rating: 4.6, Orders: 23},
			{Name: "Durban Industrial Supply", Category: "Tools & Equipment", Rating: 4.9, Orders: 67},
			{Name: "Pretoria Chemical Corp", Category: "Chemicals", Rating: 4.5, Orders: 12},
		},
	}
}

func (s *dashboardService) Supplier(_ context.Context) *response.SupplierDashboardResponse {
	return &response.SupplierDashboardResponse{
		Stats: []response.StatCard{
			{Title: "Active Contracts", Value: "8", Change: "+3 this month"},
			{Title: "Product Lines", Value: "16", Change: "+2 this month"},
			{Title: "Contract Value", Value: "R 156,500", Change: "+22% from last month"},
		},
		Contracts: []response.SupplierContract{
			{ID: "CON-001", Client: "Steel Manufacturing Co", Value: "R 45,000", Status: "Active"},
			{ID: "CON-002", Client: "Metro Builders Ltd", Value: "R 28,500", Status: "Pending"},
			{ID: "CON-003", Client: "Industrial Parts SA", Value: "R 15,200", Status: "Completed"},
		},
		Products: []response.SupplierProduct{
			{Name: "Raw Steel Materials", Category: "Metals", Availability: "In Stock", Price: "R 850/ton"},
			{Name: "Construction Chemicals", Category: "Chemicals", Availability: "Limited", Price: "R 45/liter"},
			{Name: "Industrial Tools", Category: "Equipment", Availability: "In Stock", Price: "R 1,200/set"},
			{Name: "Logistics Services", Category: "Services", Availability: "Available", Price: "R 25/km"},
		},
		Manufacturers: []response.ManufacturerPartner{
			{Name: "Steel Manufacturing Co", Industry: "Manufacturing", Contracts: 3, Value: "R 125,000"},
			{Name: "Metro Builders Ltd", Industry: "Construction", Contracts: 2, Value: "R 89,500"},
			{Name: "Industrial Parts SA", Industry: "Industrial", Contracts: 5, Value: "R 234,000"},
			{Name: "Cape Town Manufacturers", Industry: "Manufacturing", Contracts: 1, Value: "R 67,800"},
		},
	}
}
