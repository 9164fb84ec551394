package command

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// AddCustomerPaymentCommand represents the command to record a payment
// received from a registered customer.
type AddCustomerPaymentCommand struct {
	CustomerID string
	Amount     float64
	Method     string
	Note       string
	Date       time.Time
}

// UpdateCustomerPaymentCommand represents the command to update a payment
type UpdateCustomerPaymentCommand struct {
	ID         string
	CustomerID string
	Amount     float64
	Method     string
	Note       string
	Date       time.Time
}

// DeleteCustomerPaymentCommand represents the command to delete a payment
type DeleteCustomerPaymentCommand struct {
	ID string
}

// CustomerPaymentHandler handles the payment create/update/delete commands
type CustomerPaymentHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewCustomerPaymentHandler creates a new customer payment handler
func NewCustomerPaymentHandler(store domain.StateStore, notifier domain.Notifier) *CustomerPaymentHandler {
	return &CustomerPaymentHandler{store: store, notifier: notifier}
}

// Add records a new customer payment
func (h *CustomerPaymentHandler) Add(ctx context.Context, cmd AddCustomerPaymentCommand) (*domain.CustomerPayment, error) {
	if cmd.CustomerID == "" {
		return nil, fmt.Errorf("payment requires a customer")
	}
	if cmd.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	date := cmd.Date
	if date.IsZero() {
		date = time.Now()
	}
	payment := domain.CustomerPayment{
		ID:         domain.NewID(),
		CustomerID: cmd.CustomerID,
		Amount:     cmd.Amount,
		Method:     cmd.Method,
		Note:       cmd.Note,
		Date:       date,
	}
	err := h.store.Update(ctx, func(s *domain.State) error {
		s.CustomerPayments = append(s.CustomerPayments, payment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify("Payment recorded", domain.SeveritySuccess)
	return &payment, nil
}

// Update replaces an existing payment record
func (h *CustomerPaymentHandler) Update(ctx context.Context, cmd UpdateCustomerPaymentCommand) error {
	if cmd.CustomerID == "" {
		return fmt.Errorf("payment requires a customer")
	}
	if cmd.Amount <= 0 {
		return fmt.Errorf("payment amount must be positive")
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.CustomerPayments {
			if s.CustomerPayments[i].ID == cmd.ID {
				date := cmd.Date
				if date.IsZero() {
					date = s.CustomerPayments[i].Date
				}
				s.CustomerPayments[i] = domain.CustomerPayment{
					ID:         cmd.ID,
					CustomerID: cmd.CustomerID,
					Amount:     cmd.Amount,
					Method:     cmd.Method,
					Note:       cmd.Note,
					Date:       date,
				}
				return nil
			}
		}
		return fmt.Errorf("payment %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Payment updated", domain.SeveritySuccess)
	return nil
}

// Delete removes a payment record
func (h *CustomerPaymentHandler) Delete(ctx context.Context, cmd DeleteCustomerPaymentCommand) error {
	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.CustomerPayments {
			if s.CustomerPayments[i].ID == cmd.ID {
				s.CustomerPayments = append(s.CustomerPayments[:i], s.CustomerPayments[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("payment %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Payment deleted", domain.SeveritySuccess)
	return nil
}
