package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// Reglas de lotes.
const (
	BatchCodeMinLen = 3
	BatchCodeMaxLen = 50
	// MaxBatchQuantity tope de cantidad inicial por lote.
	MaxBatchQuantity = 10000
)

// BatchDraft es un lote propuesto para creación, aún sin validar.
// StoreID nil = bodega central.
type BatchDraft struct {
	BatchCode       string
	ProductID       int64
	StoreID         *int64
	ProductionDate  time.Time
	ExpirationDate  time.Time
	InitialQuantity int
	BatchCost       decimal.Decimal
}

// ValidateNewBatch valida un lote nuevo contra los lotes ya cargados.
// La unicidad del código es solo un rechazo rápido local: la autoridad
// final es el backend.
func ValidateNewBatch(draft BatchDraft, existing []entity.ProductBatch, now time.Time) ValidationResult {
	var res ValidationResult

	code := strings.TrimSpace(draft.BatchCode)
	switch {
	case code == "":
		res.addError("batchCode", "ingrese el código del lote")
	case len(code) < BatchCodeMinLen || len(code) > BatchCodeMaxLen:
		res.addError("batchCode", fmt.Sprintf(
			"el código del lote debe tener entre %d y %d caracteres", BatchCodeMinLen, BatchCodeMaxLen))
	default:
		for _, b := range existing {
			if strings.EqualFold(strings.TrimSpace(b.BatchCode), code) {
				res.addError("batchCode", fmt.Sprintf("el código de lote %s ya existe", code))
				break
			}
		}
	}

	if draft.ProductID <= 0 {
		res.addError("productId", "seleccione un producto")
	}

	today := dateOnly(now)
	if dateOnly(draft.ProductionDate).After(today) {
		res.addError("productionDate", "la fecha de producción no puede ser futura")
	}
	if !draft.ExpirationDate.After(draft.ProductionDate) {
		res.addError("expirationDate", "la fecha de vencimiento debe ser posterior a la de producción")
	} else if dateOnly(draft.ExpirationDate).Before(today) {
		res.addError("expirationDate", "no se puede crear un lote ya vencido")
	}

	switch {
	case draft.InitialQuantity <= 0:
		res.addError("initialQuantity", "la cantidad inicial debe ser un entero positivo")
	case draft.InitialQuantity > MaxBatchQuantity:
		res.addError("initialQuantity", fmt.Sprintf(
			"la cantidad inicial no puede superar %d unidades", MaxBatchQuantity))
	}

	if draft.BatchCost.IsNegative() {
		res.addError("batchCost", "el costo del lote no puede ser negativo")
	}

	return res
}

// ClampQuantity acota la cantidad actual de un lote al rango [0, inicial].
// Un lote nunca vuelve a superar su cantidad inicial.
func ClampQuantity(quantity, initial int) int {
	if quantity < 0 {
		return 0
	}
	if quantity > initial {
		return initial
	}
	return quantity
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
