package booking

import (
	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
)

// Efeitos pós-commit. Os despachantes concretos (audit.Dispatcher e
// notify.Dispatcher) são assíncronos e nunca falham o caso de uso.

type AuditSink interface {
	Dispatch(ev audit.Event)
}

type NotifySink interface {
	Dispatch(msg notify.Message)
}
