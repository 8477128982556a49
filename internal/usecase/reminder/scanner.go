package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/scanlock"
)

// ======================================================
// VARREDURA DE LEMBRETES
// ======================================================

// Window é uma janela de antecedência. Um agendamento recebe no máximo um
// lembrete por janela (marcador em reminder_logs).
type Window struct {
	Name      string
	Lookahead time.Duration
}

func DefaultWindows() []Window {
	return []Window{
		{Name: "day_before", Lookahead: 24 * time.Hour},
		{Name: "soon", Lookahead: 15 * time.Minute},
	}
}

// Repository é o recorte de armazenamento que a varredura precisa.
type Repository interface {
	// ListDue devolve os pending/confirmed com start_at em [from, to) e sem
	// marcador para a janela. Agendamentos já iniciados nunca casam com a
	// faixa, o que limita naturalmente os retries de contatos que sempre
	// falham.
	ListDue(ctx context.Context, window string, from, to time.Time) ([]models.Appointment, error)

	// MarkReminded grava o marcador da janela. Idempotente (conflito é
	// ignorado).
	MarkReminded(ctx context.Context, appointmentID uint, window string, provider string, sentAt time.Time) error
}

type Report struct {
	Skipped       bool     `json:"skipped"`
	RemindersSent int      `json:"reminders_sent"`
	Errors        []string `json:"errors"`
}

type Scanner struct {
	repo     Repository
	notifier notify.Notifier
	lock     scanlock.Lock
	windows  []Window

	now func() time.Time
}

func NewScanner(
	repo Repository,
	notifier notify.Notifier,
	lock scanlock.Lock,
	windows []Window,
) *Scanner {
	if len(windows) == 0 {
		windows = DefaultWindows()
	}
	return &Scanner{
		repo:     repo,
		notifier: notifier,
		lock:     lock,
		windows:  windows,
		now:      time.Now,
	}
}

// Scan é o único ponto de entrada da varredura: o ticker e o disparo manual
// chamam o mesmo método, então dividem a mesma guarda de reentrância.
// Invocação com varredura em andamento é descartada (nunca enfileirada).
func (s *Scanner) Scan(ctx context.Context) (Report, error) {
	ok, err := s.lock.TryLock(ctx)
	if err != nil {
		return Report{}, err
	}
	if !ok {
		log.Println("reminder scan already running, skipping")
		return Report{Skipped: true}, nil
	}
	defer func() {
		if err := s.lock.Unlock(ctx); err != nil {
			log.Println("reminder scan unlock error:", err)
		}
	}()

	report := Report{Errors: []string{}}
	now := s.now()

	for _, w := range s.windows {
		due, err := s.repo.ListDue(ctx, w.Name, now, now.Add(w.Lookahead))
		if err != nil {
			// falha de leitura de uma janela não derruba as demais
			report.Errors = append(report.Errors,
				fmt.Sprintf("window %s: list: %v", w.Name, err))
			continue
		}

		for _, ap := range due {
			if err := s.dispatch(ctx, &ap, w); err != nil {
				// sem marcador: a próxima varredura tenta de novo
				report.Errors = append(report.Errors,
					fmt.Sprintf("appointment %d window %s: %v", ap.ID, w.Name, err))
				continue
			}
			report.RemindersSent++
		}
	}

	return report, nil
}

func (s *Scanner) dispatch(ctx context.Context, ap *models.Appointment, w Window) error {
	msg := notify.Message{
		AppointmentID: ap.ID,
		Kind:          "reminder_" + w.Name,
		Recipient:     ap.Customer.Phone,
		Body:          "Lembrete: você tem horário em " + ap.Date + " às " + ap.TimeSlot + ".",
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		return err
	}

	// marcador só depois do envio confirmado
	return s.repo.MarkReminded(ctx, ap.ID, w.Name, s.notifier.ProviderID(), s.now())
}
