package models

type AdminStats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalSellers  int64   `json:"totalSellers"`
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type SellerStats struct {
	TotalProducts  int64            `json:"totalProducts"`
	TotalOrders    int64            `json:"totalOrders"`
	TotalRevenue   float64          `json:"totalRevenue"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
}
