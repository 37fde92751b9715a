package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"brainbox-backend-go/internal/db"
	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
	"brainbox-backend-go/pkg/mailer"
	"brainbox-backend-go/pkg/messagequeue"
)

// PaymentRecordedEvent is published to the message queue after a payment
// commits.
type PaymentRecordedEvent struct {
	PaymentID string    `json:"paymentId"`
	Email     string    `json:"email"`
	UserID    string    `json:"userId"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	DataIDs   []string  `json:"dataIDs"`
	At        time.Time `json:"at"`
}

// paymentService implements the PaymentService interface.
type paymentService struct {
	tx          TxRunner
	paymentRepo db.PaymentRepository
	cartRepo    db.CartRepository
	bookingRepo db.BookingRepository
	queue       messagequeue.MessageQueue // optional
	queueName   string
	mail        mailer.Mailer // optional
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService instance. queue and mail
// are optional side channels; nil disables them.
func NewPaymentService(
	tx TxRunner,
	paymentRepo db.PaymentRepository,
	cartRepo db.CartRepository,
	bookingRepo db.BookingRepository,
	queue messagequeue.MessageQueue,
	queueName string,
	mail mailer.Mailer,
	logger *zap.Logger,
) PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &paymentService{
		tx:          tx,
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		bookingRepo: bookingRepo,
		queue:       queue,
		queueName:   queueName,
		mail:        mail,
		logger:      logger,
	}
}

// Record inserts the payment document and settles the referenced items in a
// single transaction: category "Food Order" deletes the matching cart
// entries, "Table Booking" marks the matching bookings paid. Exactly one of
// the two runs, never partially; any other category settles nothing. A
// malformed entry in dataIDs fails the request before any write.
func (s *paymentService) Record(ctx context.Context, req models.RecordPaymentRequest) (*models.Payment, error) {
	oids, err := database.ParseIDs(req.DataIDs)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Email:         req.Email,
		UserID:        req.UserID,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Category:      req.Category,
		DataIDs:       req.DataIDs,
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.paymentRepo.Insert(txCtx, payment)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
		oid, err := database.ParseID(id)
		if err != nil {
			return fmt.Errorf("store returned unparseable payment id %q: %w", id, err)
		}
		payment.ID = oid

		switch req.Category {
		case models.CategoryFoodOrder:
			if _, err := s.cartRepo.DeleteByIDs(txCtx, oids); err != nil {
				return fmt.Errorf("failed to clear cart entries: %w", err)
			}
		case models.CategoryTableBooking:
			if _, err := s.bookingRepo.MarkPaidByIDs(txCtx, oids); err != nil {
				return fmt.Errorf("failed to mark bookings paid: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(payment)
	return payment, nil
}

// ListByEmail returns the payment history for an email address.
func (s *paymentService) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for %q: %w", email, err)
	}
	return payments, nil
}

// notify publishes the payment event and emails a receipt. Both channels
// are best-effort: the payment has already committed, so failures are
// logged and swallowed.
func (s *paymentService) notify(payment *models.Payment) {
	if s.queue != nil {
		event := PaymentRecordedEvent{
			PaymentID: payment.ID.Hex(),
			Email:     payment.Email,
			UserID:    payment.UserID,
			Category:  payment.Category,
			Price:     payment.Price,
			DataIDs:   payment.DataIDs,
			At:        payment.CreatedAt,
		}
		if body, err := json.Marshal(event); err == nil {
			if err := s.queue.Publish(s.queueName, body); err != nil {
				s.logger.Warn("Failed to publish payment event",
					zap.String("paymentId", event.PaymentID), zap.Error(err))
			}
		}
	}

	if s.mail != nil {
		subject := fmt.Sprintf("Payment received: %s", payment.Category)
		body := fmt.Sprintf(
			"We received your payment of $%.2f (%s) covering %d item(s). Reference: %s.",
			payment.Price, payment.Category, len(payment.DataIDs), payment.ID.Hex(),
		)
		if err := s.mail.Send(payment.Email, subject, body); err != nil {
			s.logger.Warn("Failed to send payment receipt",
				zap.String("paymentId", payment.ID.Hex()), zap.Error(err))
		}
	}
}
