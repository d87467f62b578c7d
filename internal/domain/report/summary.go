package report

import "storefront/internal/domain/entity"

// ProductSale accumulates the sales of a single product inside a window.
type ProductSale struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// Summary is the result of aggregating orders over a window. It is derived
// per request and never persisted.
type Summary struct {
	Window       Window       `json:"window"`
	OrderCount   int64        `json:"order_count"`
	TotalRevenue float64      `json:"total_revenue"`
	BestSeller   *ProductSale `json:"best_seller,omitempty"`
}

// Summarize folds a set of orders into a sales summary. Revenue uses the
// price captured on each order, not the product's current price. The best
// seller is the product with the most orders; ties break on higher revenue,
// then on lower product id so the result is deterministic.
func Summarize(window Window, orders []entity.Order) Summary {
	summary := Summary{Window: window, OrderCount: int64(len(orders))}
	if len(orders) == 0 {
		return summary
	}

	sales := make(map[int64]*ProductSale, len(orders))
	for _, order := range orders {
		summary.TotalRevenue += order.Price

		sale, ok := sales[order.ProductID]
		if !ok {
			sale = &ProductSale{ProductID: order.ProductID}
			sales[order.ProductID] = sale
		}
		sale.Quantity++
		sale.Revenue += order.Price
	}

	var best *ProductSale
	for _, sale := range sales {
		if best == nil || outsells(sale, best) {
			best = sale
		}
	}
	summary.BestSeller = best

	return summary
}

// outsells reports whether a ranks above b in the best-seller ordering.
func outsells(a, b *ProductSale) bool {
	if a.Quantity != b.Quantity {
		return a.Quantity > b.Quantity
	}
	if a.Revenue != b.Revenue {
		return a.Revenue > b.Revenue
	}

	return a.ProductID < b.ProductID
}
