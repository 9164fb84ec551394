package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// AddCustomerCommand represents the command to add a customer
type AddCustomerCommand struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// UpdateCustomerCommand represents the command to update a customer
type UpdateCustomerCommand struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
}

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID string
}

// CustomerHandler handles the customer create/update/delete commands
type CustomerHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(store domain.StateStore, notifier domain.Notifier) *CustomerHandler {
	return &CustomerHandler{store: store, notifier: notifier}
}

// Add stores a new customer
func (h *CustomerHandler) Add(ctx context.Context, cmd AddCustomerCommand) (*domain.Customer, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", domain.ErrEmptyName)
	}

	customer := domain.Customer{
		ID:      domain.NewID(),
		Name:    name,
		Phone:   cmd.Phone,
		Email:   cmd.Email,
		Address: cmd.Address,
	}
	err := h.store.Update(ctx, func(s *domain.State) error {
		s.Customers = append(s.Customers, customer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify(fmt.Sprintf("Customer %s added", customer.Name), domain.SeveritySuccess)
	return &customer, nil
}

// Update replaces an existing customer record
func (h *CustomerHandler) Update(ctx context.Context, cmd UpdateCustomerCommand) error {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return fmt.Errorf("customer name is required: %w", domain.ErrEmptyName)
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.Customers {
			if s.Customers[i].ID == cmd.ID {
				s.Customers[i] = domain.Customer{
					ID:      cmd.ID,
					Name:    name,
					Phone:   cmd.Phone,
					Email:   cmd.Email,
					Address: cmd.Address,
				}
				return nil
			}
		}
		return fmt.Errorf("customer %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(fmt.Sprintf("Customer %s updated", name), domain.SeveritySuccess)
	return nil
}

// Delete removes a customer. Sales recorded against the customer keep their
// id; history is never rewritten.
func (h *CustomerHandler) Delete(ctx context.Context, cmd DeleteCustomerCommand) error {
	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.Customers {
			if s.Customers[i].ID == cmd.ID {
				s.Customers = append(s.Customers[:i], s.Customers[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("customer %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Customer deleted", domain.SeveritySuccess)
	return nil
}
