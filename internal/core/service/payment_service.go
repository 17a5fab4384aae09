package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/abikefoods/storefront-api/internal/api/metrics"
	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// registrationExtension is how long a successful training-class payment keeps
// the registration active.
const registrationExtension = 30 * 24 * time.Hour

// PaymentService processes payment-gateway callbacks. Each gateway reference
// is processed exactly once; replays are rejected by the dedup checker.
type PaymentService struct {
	payments ports.PaymentRepository
	students ports.StudentRepository
	dedup    ports.PaymentDeduper
	logger   zerolog.Logger
	now      func() time.Time
}

func NewPaymentService(payments ports.PaymentRepository, students ports.StudentRepository, dedup ports.PaymentDeduper, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		payments: payments,
		students: students,
		dedup:    dedup,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Confirm records the callback. A successful payment extends the payer's
// training-class registration by 30 days, creating the student record when
// the payer is unknown.
func (s *PaymentService) Confirm(ctx context.Context, input ports.PaymentCallbackInput) (*domain.Payment, error) {
	seen, err := s.dedup.Seen(ctx, input.Reference)
	if err != nil {
		// Dedup store down: processing anyway risks a double credit, so the
		// gateway gets an error and will redeliver.
		return nil, err
	}
	if seen {
		metrics.PaymentsDedupTotal.WithLabelValues("hit").Inc()
		s.logger.Info().Str("reference", input.Reference).Msg("duplicate payment callback ignored")
		return nil, domain.ErrDuplicatePayment
	}
	metrics.PaymentsDedupTotal.WithLabelValues("miss").Inc()

	status := domain.PaymentFailed
	if input.Success {
		status = domain.PaymentSuccess
	}

	payment, ok := s.payments.Add(ctx, domain.Payment{
		Reference: input.Reference,
		Email:     input.Email,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Method:    input.Method,
		Status:    status,
	})
	if !ok {
		// The callback was not recorded, so the dedup marker must not stand
		// or the gateway's redelivery would be rejected as a replay.
		if err := s.dedup.Forget(ctx, input.Reference); err != nil {
			s.logger.Error().Err(err).Str("reference", input.Reference).Msg("dedup marker not released")
		}
		return nil, domain.ErrStorageWrite
	}
	metrics.PaymentsProcessedTotal.WithLabelValues(string(status)).Inc()

	if status == domain.PaymentSuccess {
		s.extendRegistration(ctx, input.Email)
	}

	s.logger.Info().
		Str("reference", input.Reference).
		Str("status", string(status)).
		Float64("amount", input.Amount).
		Msg("payment callback processed")
	return &payment, nil
}

func (s *PaymentService) extendRegistration(ctx context.Context, email string) {
	expires := s.now().Add(registrationExtension)

	student, ok := s.students.FindByEmail(ctx, email)
	if !ok {
		if _, added := s.students.Add(ctx, domain.Student{
			Email:     email,
			Name:      domain.Registration{Email: email}.DisplayName(),
			ExpiresAt: &expires,
		}); !added {
			s.logger.Error().Str("email", email).Msg("paid student record not created")
		}
		return
	}

	ptr := &expires
	if _, updated := s.students.Update(ctx, student.ID, ports.StudentPatch{ExpiresAt: &ptr}); !updated {
		s.logger.Error().Str("email", email).Msg("registration extension not persisted")
	}
}
