package response

// Dashboard payloads are illustrative mock data; there is no live backend
// behind them.

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type ManufacturerOrder struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
}

type InventoryItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Price    string `json:"price"`
	Status   string `json:"status"`
}

type SupplierPartner struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Rating   float64 `json:"rating"`
	Orders   int    `json:"orders"`
}

type ManufacturerDashboardResponse struct {
	Stats        []StatCard          `json:"stats"`
	RecentOrders []ManufacturerOrder `json:"recentOrders"`
	Inventory    []InventoryItem     `json:"inventory"`
	Suppliers    []SupplierPartner   `json:"suppliers"`
}

type SupplierContract struct {
	ID     string `json:"id"`
	Client string `json:"client"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

type SupplierProduct struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Availability string `json:"availability"`
	Price        string `json:"price"`
}

type ManufacturerPartner struct {
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Contracts int    `json:"contracts"`
	Value     string `json:"value"`
}

type SupplierDashboardResponse struct {
	Stats         []StatCard            `json:"stats"`
	Contracts     []SupplierContract    `json:"contracts"`
	Products      []SupplierProduct     `json:"products"`
	Manufacturers []ManufacturerPartner `json:"manufacturers"`
}
