package notify

import (
	"context"
	"log"
	"time"
)

// Dispatcher envia notificações pós-commit em segundo plano. O chamador
// nunca bloqueia nem falha por causa do notificador: fila cheia descarta.
type Dispatcher struct {
	notifier Notifier
	queue    chan Message
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := d.notifier.Send(ctx, msg); err != nil {
			log.Println("notify error:", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar a API)
		log.Println("notify queue full, dropping message")
	}
}
