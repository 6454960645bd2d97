package inventory

import (
	"fmt"
	"time"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// Umbrales del flujo de movimientos. Las revisiones del formulario original
// oscilaban entre valores; aquí quedan fijados como constantes con nombre.
const (
	// DefaultLowStockThreshold unidades bajo las cuales se advierte stock bajo.
	DefaultLowStockThreshold = 10
	// MaxSaneEntryQuantity tope de cordura para entradas (advertencia, no bloqueo).
	MaxSaneEntryQuantity = 10000
	// ExpiryWarningWindow ventana de advertencia de vencimiento próximo.
	ExpiryWarningWindow = 30 * 24 * time.Hour
)

// LowStockPolicy decide qué umbral dispara la advertencia de stock bajo.
type LowStockPolicy int

const (
	// LowStockFixed usa siempre DefaultLowStockThreshold.
	LowStockFixed LowStockPolicy = iota
	// LowStockPerStore usa el ReorderThreshold de la relación producto-tienda,
	// cayendo al umbral fijo cuando la relación no define uno.
	LowStockPerStore
)

// MovementDraft es el movimiento propuesto por el usuario, aún sin validar.
type MovementDraft struct {
	Type        string
	ProductID   int64
	BatchID     *int64
	FromStoreID *int64
	ToStoreID   *int64
	Quantity    int
	Reason      string
	UserID      int64
	Notes       string
}

// ValidationResult acumula errores bloqueantes por campo y advertencias informativas.
type ValidationResult struct {
	Errors   map[string]string
	Warnings []string
}

// OK indica que no hay errores bloqueantes.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// addError registra el primer error de un campo; los siguientes no lo pisan.
func (r *ValidationResult) addError(field, msg string) {
	if r.Errors == nil {
		r.Errors = map[string]string{}
	}
	if _, ok := r.Errors[field]; !ok {
		r.Errors[field] = msg
	}
}

func (r *ValidationResult) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// MovementValidator valida un borrador de movimiento contra un snapshot de
// stock. Función pura: no hace I/O ni muta sus entradas. Las reglas se
// evalúan todas; no hay cortocircuito más allá de un mensaje por campo.
type MovementValidator struct {
	Policy LowStockPolicy
	Now    func() time.Time
}

// Validate aplica las reglas del flujo de movimientos en orden fijo.
func (v MovementValidator) Validate(draft MovementDraft, snap *StockSnapshot) ValidationResult {
	now := time.Now()
	if v.Now != nil {
		now = v.Now()
	}
	var res ValidationResult

	// Identidad del actor: sin usuario resuelto no se registra nada.
	if draft.UserID <= 0 {
		res.addError("user", "usuario no válido para registrar el movimiento")
	}

	if draft.ProductID <= 0 {
		res.addError("productId", "seleccione un producto")
	}

	if draft.Quantity <= 0 {
		res.addError("quantity", "la cantidad debe ser un entero positivo")
	}

	switch draft.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeTRANSFER:
	default:
		res.addError("type", "tipo de movimiento no reconocido")
		return res
	}

	if draft.Type == entity.MovementTypeTRANSFER {
		if draft.FromStoreID == nil {
			res.addError("fromStoreId", "seleccione la tienda origen")
		}
		if draft.ToStoreID == nil {
			res.addError("toStoreId", "seleccione la tienda destino")
		}
		if draft.FromStoreID != nil && draft.ToStoreID != nil && *draft.FromStoreID == *draft.ToStoreID {
			res.addError("toStoreId", "las tiendas de origen y destino deben ser distintas")
		}
	}

	var batch *entity.ProductBatch
	if draft.BatchID != nil {
		batch = snap.FindBatch(*draft.BatchID)
		if batch == nil {
			res.addError("batchId", "el lote seleccionado no está disponible")
		}
	}

	if batch != nil {
		if draft.Type == entity.MovementTypeTRANSFER && draft.FromStoreID != nil {
			if batch.StoreID == nil || *batch.StoreID != *draft.FromStoreID {
				res.addError("batchId", "el lote no se encuentra en la tienda origen")
			}
		}
		if batch.IsExpired(now) {
			res.addError("batchId", fmt.Sprintf("el lote %s está vencido", batch.BatchCode))
		} else if batch.ExpiresWithin(now, ExpiryWarningWindow) {
			res.addWarning(fmt.Sprintf("el lote %s vence el %s", batch.BatchCode, batch.ExpirationDate.Format("2006-01-02")))
		}
	}

	// Techo de stock para salidas y traslados: el lote manda si hay uno
	// seleccionado, si no el stock de la tienda (o global sin tienda).
	isOutgoing := draft.Type == entity.MovementTypeOUT || draft.Type == entity.MovementTypeTRANSFER
	if isOutgoing && draft.Quantity > 0 {
		if batch != nil {
			if draft.Quantity > batch.CurrentQuantity {
				res.addError("quantity", fmt.Sprintf(
					"el lote %s solo tiene %d unidades disponibles", batch.BatchCode, batch.CurrentQuantity))
			}
		} else if draft.Quantity > snap.StoreStock {
			res.addError("quantity", fmt.Sprintf(
				"stock insuficiente: hay %d unidades disponibles", snap.StoreStock))
		}
	}

	if draft.Type == entity.MovementTypeIN && draft.Quantity > MaxSaneEntryQuantity {
		res.addWarning(fmt.Sprintf(
			"cantidad inusualmente alta para una entrada (%d unidades); verifique antes de confirmar", draft.Quantity))
	}

	if isOutgoing && draft.Quantity > 0 && draft.Quantity <= snap.StoreStock {
		remaining := snap.StoreStock - draft.Quantity
		threshold := v.threshold(snap)
		if remaining <= 0 {
			res.addWarning("la tienda quedará sin stock de este producto")
		} else if remaining < threshold {
			res.addWarning(fmt.Sprintf(
				"stock bajo tras el movimiento: quedarán %d unidades (umbral %d)", remaining, threshold))
		}
	}

	return res
}

func (v MovementValidator) threshold(snap *StockSnapshot) int {
	if v.Policy == LowStockPerStore && snap.ReorderThreshold > 0 {
		return snap.ReorderThreshold
	}
	return DefaultLowStockThreshold
}
