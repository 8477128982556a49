package validators

import (
	"net"
	"strings"
	"time"
)

// IsDate aceita somente "AAAA-MM-DD".
func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsSlotLabel aceita somente "HH:MM" em 24h.
func IsSlotLabel(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// AreSlotLabels valida uma grade inteira (labels válidos, sem duplicatas).
func AreSlotLabels(slots []string) bool {
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		if !IsSlotLabel(s) || seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
