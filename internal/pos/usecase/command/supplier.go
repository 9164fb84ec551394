package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// AddSupplierCommand represents the command to add a supplier
type AddSupplierCommand struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// UpdateSupplierCommand represents the command to update a supplier
type UpdateSupplierCommand struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
}

// DeleteSupplierCommand represents the command to delete a supplier
type DeleteSupplierCommand struct {
	ID string
}

// SupplierHandler handles the supplier create/update/delete commands
type SupplierHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(store domain.StateStore, notifier domain.Notifier) *SupplierHandler {
	return &SupplierHandler{store: store, notifier: notifier}
}

// Add stores a new supplier
func (h *SupplierHandler) Add(ctx context.Context, cmd AddSupplierCommand) (*domain.Supplier, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("supplier name is required: %w", domain.ErrEmptyName)
	}

	supplier := domain.Supplier{
		ID:      domain.NewID(),
		Name:    name,
		Phone:   cmd.Phone,
		Email:   cmd.Email,
		Address: cmd.Address,
	}
	err := h.store.Update(ctx, func(s *domain.State) error {
		s.Suppliers = append(s.Suppliers, supplier)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify(fmt.Sprintf("Supplier %s added", supplier.Name), domain.SeveritySuccess)
	return &supplier, nil
}

// Update replaces an existing supplier record
func (h *SupplierHandler) Update(ctx context.Context, cmd UpdateSupplierCommand) error {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return fmt.Errorf("supplier name is required: %w", domain.ErrEmptyName)
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.Suppliers {
			if s.Suppliers[i].ID == cmd.ID {
				s.Suppliers[i] = domain.Supplier{
					ID:      cmd.ID,
					Name:    name,
					Phone:   cmd.Phone,
					Email:   cmd.Email,
					Address: cmd.Address,
				}
				return nil
			}
		}
		return fmt.Errorf("supplier %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(fmt.Sprintf("Supplier %s updated", name), domain.SeveritySuccess)
	return nil
}

// Delete removes a supplier. Products keep their supplier reference;
// purchase history stays untouched.
func (h *SupplierHandler) Delete(ctx context.Context, cmd DeleteSupplierCommand) error {
	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.Suppliers {
			if s.Suppliers[i].ID == cmd.ID {
				s.Suppliers = append(s.Suppliers[:i], s.Suppliers[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("supplier %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Supplier deleted", domain.SeveritySuccess)
	return nil
}
