package model

import "github.com/shopspring/decimal"

// DishSales is one row of the top-dishes ranking.
type DishSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardStats aggregates the owner's dashboard figures. Revenue counts
// delivered orders only; every call recomputes from the store.
type DashboardStats struct {
	TotalRevenue   decimal.Decimal     `json:"totalRevenue"`
	OrdersByStatus map[OrderStatus]int `json:"ordersByStatus"`
	TotalOrders    int                 `json:"totalOrders"`
	AverageRating  float64             `json:"averageRating"`
	ReviewCount    int                 `json:"reviewCount"`
	TopDishes      []DishSales         `json:"topDishes"`
}
