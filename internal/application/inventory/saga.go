package inventory

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/pkg/logger"
)

// sagaStep es un paso de una secuencia de escrituras ordenada y compensable.
// La compensación existe como costura: hoy no hay rollback (el backend no
// expone transacciones), pero el punto de extensión queda sin rediseño.
type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error // nil = sin compensación
}

// runSaga ejecuta los pasos estrictamente en orden. Al primer fallo se
// detiene y devuelve PartialApplyError: los pasos previos quedan aplicados.
func runSaga(ctx context.Context, log *logger.Logger, correlationID string, steps []sagaStep) error {
	for i, st := range steps {
		if err := st.run(ctx); err != nil {
			log.Error().
				Err(err).
				Str("correlation_id", correlationID).
				Str("step", st.name).
				Int("applied_steps", i).
				Msg("secuencia de inventario interrumpida; sin compensación automática")
			return &PartialApplyError{Step: st.name, CorrelationID: correlationID, Err: err}
		}
		log.Debug().
			Str("correlation_id", correlationID).
			Str("step", st.name).
			Msg("paso de inventario aplicado")
	}
	return nil
}
