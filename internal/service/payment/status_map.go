package payment

import "github.com/lumenprint/calendarshop-backend/internal/domain"

// mapProcessorStatus translates the processor's payment vocabulary into the
// internal three-state model. The second return is false for statuses this
// table does not know; callers must treat those as a no-op, never as a
// failure.
func mapProcessorStatus(status string) (domain.PaymentStatus, bool) {
	switch status {
	case "approved":
		return domain.PaymentStatusPaid, true
	case "rejected", "cancelled", "refunded", "charged_back":
		return domain.PaymentStatusFailed, true
	case "pending", "in_process", "in_mediation":
		return domain.PaymentStatusPending, true
	}
	return "", false
}
