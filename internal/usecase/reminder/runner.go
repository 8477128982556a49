package reminder

import (
	"context"
	"log"
	"time"
)

// Runner dispara a varredura periodicamente. O tick só invoca Scan; toda a
// guarda de concorrência mora no Scanner.
type Runner struct {
	scanner  *Scanner
	interval time.Duration
}

func NewRunner(scanner *Scanner, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Runner{
		scanner:  scanner,
		interval: interval,
	}
}

func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := r.scanner.Scan(ctx)
			if err != nil {
				log.Println("reminder scan failed:", err)
				continue
			}
			if report.RemindersSent > 0 || len(report.Errors) > 0 {
				log.Printf(
					"reminder scan: sent=%d errors=%d",
					report.RemindersSent,
					len(report.Errors),
				)
			}
		}
	}
}
