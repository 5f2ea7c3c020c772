// Package reports aggregates sales into the dashboard and report
// endpoints. Revenue figures sum the sale price as recorded, matching
// what the sale transaction stored at the time of sale.
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"evparts_admin/internal/categories"
	"evparts_admin/internal/products"
	"evparts_admin/internal/sales"
	"evparts_admin/internal/users"
)

// Dashboard is the entity counts plus total revenue shown on the
// landing page.
type Dashboard struct {
	TotalProducts   int             `json:"total_products"`
	TotalCategories int             `json:"total_categories"`
	TotalSales      int             `json:"total_sales"`
	TotalUsers      int             `json:"total_users"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}

// DatePoint is one bucket of a daily or monthly report.
type DatePoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total_selling_price"`
}

// RangeRow is one sale inside a date-range report.
type RangeRow struct {
	Date        string          `json:"date"`
	Name        string          `json:"name"`
	TotalSales  int             `json:"total_sales"`
	TotalSell   decimal.Decimal `json:"total_selling_price"`
	TotalBuying decimal.Decimal `json:"total_buying_price"`
}

// RangeSummary totals a date-range report.
type RangeSummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Profit       decimal.Decimal `json:"profit"`
}

// TopProduct is a product ranked by units sold.
type TopProduct struct {
	*products.Product
	TotalQty  int             `json:"totalQty"`
	TotalSold decimal.Decimal `json:"totalSold"`
}

// Service computes reports over the sales and catalog storages.
type Service struct {
	sales      sales.Storage
	products   products.Storage
	users      users.Storage
	categories categories.Storage
	logger     *zap.Logger
}

// NewService creates a new Service.
func NewService(saleStorage sales.Storage, productStorage products.Storage, userStorage users.Storage, categoryStorage categories.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sales:      saleStorage,
		products:   productStorage,
		users:      userStorage,
		categories: categoryStorage,
		logger:     logger,
	}
}

// Dashboard returns the entity counts and total revenue.
func (s *Service) Dashboard() (*Dashboard, error) {
	allSales, err := s.sales.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	allProducts, err := s.products.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	allUsers, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	allCategories, err := s.categories.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	revenue := decimal.Zero
	for _, sale := range allSales {
		revenue = revenue.Add(sale.Price)
	}

	return &Dashboard{
		TotalProducts:   len(allProducts),
		TotalCategories: len(allCategories),
		TotalSales:      len(allSales),
		TotalUsers:      len(allUsers),
		TotalRevenue:    revenue,
	}, nil
}

// Daily groups one month's sales by day.
func (s *Service) Daily(year, month int) ([]DatePoint, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)
	return s.buckets(start, end, "2006-01-02")
}

// Monthly groups one year's sales by month.
func (s *Service) Monthly(year int) ([]DatePoint, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)
	return s.buckets(start, end, "2006-01")
}

func (s *Service) buckets(start, end time.Time, layout string) ([]DatePoint, error) {
	allSales, err := s.sales.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}

	totals := map[string]decimal.Decimal{}
	for _, sale := range allSales {
		if sale.Date.Before(start) || !sale.Date.Before(end) {
			continue
		}
		key := sale.Date.Format(layout)
		totals[key] = totals[key].Add(sale.Price)
	}

	points := make([]DatePoint, 0, len(totals))
	for key, total := range totals {
		points = append(points, DatePoint{Date: key, Total: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// Range reports every sale between start and end inclusive, with a
// revenue/cost/profit summary. The buying cost comes from the current
// product record; sales of deleted products count zero cost.
func (s *Service) Range(start, end time.Time) ([]RangeRow, *RangeSummary, error) {
	allSales, err := s.sales.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	sort.Slice(allSales, func(i, j int) bool { return allSales[i].Date.Before(allSales[j].Date) })

	rows := make([]RangeRow, 0)
	summary := &RangeSummary{TotalRevenue: decimal.Zero, TotalCost: decimal.Zero, Profit: decimal.Zero}
	for _, sale := range allSales {
		if sale.Date.Before(start) || sale.Date.After(end) {
			continue
		}

		name := "Deleted Product"
		cost := decimal.Zero
		if p, err := s.sales.Product(sale.ProductID); err == nil {
			name = p.Name
			cost = p.BuyPrice.Mul(decimal.NewFromInt(int64(sale.Qty)))
		}

		rows = append(rows, RangeRow{
			Date:        sale.Date.Format("2006-01-02"),
			Name:        name,
			TotalSales:  sale.Qty,
			TotalSell:   sale.Price,
			TotalBuying: cost,
		})
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.Price)
		summary.TotalCost = summary.TotalCost.Add(cost)
	}
	summary.Profit = summary.TotalRevenue.Sub(summary.TotalCost)

	return rows, summary, nil
}

// TopProducts ranks products by units sold, capped at limit.
func (s *Service) TopProducts(limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	allSales, err := s.sales.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}
	allProducts, err := s.products.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	qtyByProduct := map[string]int{}
	soldByProduct := map[string]decimal.Decimal{}
	for _, sale := range allSales {
		qtyByProduct[sale.ProductID] += sale.Qty
		soldByProduct[sale.ProductID] = soldByProduct[sale.ProductID].Add(sale.Price)
	}

	top := make([]TopProduct, 0, len(allProducts))
	for _, p := range allProducts {
		top = append(top, TopProduct{
			Product:   p,
			TotalQty:  qtyByProduct[p.ID],
			TotalSold: soldByProduct[p.ID],
		})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].TotalQty > top[j].TotalQty })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}
