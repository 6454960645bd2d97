package inventory

import (
	"fmt"

	dominv "github.com/Jwerthe/chocorocks-inventory/internal/domain/inventory"
)

// ValidationError transporta el resultado de una validación fallida
// (errores por campo + advertencias) hacia la capa HTTP.
type ValidationError struct {
	Result dominv.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación fallida (%d campos)", len(e.Result.Errors))
}

// PartialApplyError indica que la secuencia de escrituras falló a mitad de
// camino: los pasos ya aplicados quedan aplicados (el backend no expone
// transacciones) y el llamador debe refrescar el stock antes de reintentar.
type PartialApplyError struct {
	Step          string
	CorrelationID string
	Err           error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("error registrando el movimiento (paso %s, correlación %s): el stock puede haber quedado parcialmente actualizado: %v",
		e.Step, e.CorrelationID, e.Err)
}

func (e *PartialApplyError) Unwrap() error { return e.Err }
