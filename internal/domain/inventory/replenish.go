package inventory

import "github.com/shopspring/decimal"

// Factor de stock ideal respecto al umbral de reorden.
var idealStockFactor = decimal.NewFromFloat(1.5)

// SuggestedOrderQuantity calcula la cantidad sugerida de reposición para una
// relación producto-tienda bajo umbral: StockIdeal = Umbral * 1.5, y la
// sugerencia es lo que falta para llegar al ideal.
func SuggestedOrderQuantity(currentStock, threshold int) int {
	ideal := decimal.NewFromInt(int64(threshold)).Mul(idealStockFactor).Ceil().IntPart()
	suggested := int(ideal) - currentStock
	if suggested < 0 {
		return 0
	}
	return suggested
}

// EstimatedOrderCost valora la reposición sugerida al costo de producción unitario.
func EstimatedOrderCost(suggestedQty int, unitCost decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(int64(suggestedQty)))
}
