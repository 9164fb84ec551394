package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// AddExpenseCommand represents the command to record an expense
type AddExpenseCommand struct {
	Description string
	Category    string
	Amount      float64
	Date        time.Time
}

// UpdateExpenseCommand represents the command to update an expense
type UpdateExpenseCommand struct {
	ID          string
	Description string
	Category    string
	Amount      float64
	Date        time.Time
}

// DeleteExpenseCommand represents the command to delete an expense
type DeleteExpenseCommand struct {
	ID string
}

// ExpenseHandler handles the expense create/update/delete commands
type ExpenseHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(store domain.StateStore, notifier domain.Notifier) *ExpenseHandler {
	return &ExpenseHandler{store: store, notifier: notifier}
}

// Add records a new expense
func (h *ExpenseHandler) Add(ctx context.Context, cmd AddExpenseCommand) (*domain.Expense, error) {
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return nil, fmt.Errorf("expense description is required: %w", domain.ErrEmptyName)
	}
	if cmd.Amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive")
	}

	date := cmd.Date
	if date.IsZero() {
		date = time.Now()
	}
	expense := domain.Expense{
		ID:          domain.NewID(),
		Description: description,
		Category:    cmd.Category,
		Amount:      cmd.Amount,
		Date:        date,
	}
	err := h.store.Update(ctx, func(s *domain.State) error {
		s.Expenses = append(s.Expenses, expense)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify("Expense recorded", domain.SeveritySuccess)
	return &expense, nil
}

// Update replaces an existing expense record
func (h *ExpenseHandler) Update(ctx context.Context, cmd UpdateExpenseCommand) error {
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return fmt.Errorf("expense description is required: %w", domain.ErrEmptyName)
	}
	if cmd.Amount <= 0 {
		return fmt.Errorf("expense amount must be positive")
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.Expenses {
			if s.Expenses[i].ID == cmd.ID {
				date := cmd.Date
				if date.IsZero() {
					date = s.Expenses[i].Date
				}
				s.Expenses[i] = domain.Expense{
					ID:          cmd.ID,
					Description: description,
					Category:    cmd.Category,
					Amount:      cmd.Amount,
					Date:        date,
				}
				return nil
			}
		}
		return fmt.Errorf("expense %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Expense updated", domain.SeveritySuccess)
	return nil
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(ctx context.Context, cmd DeleteExpenseCommand) error {
	err := h.store.Update(ctx, func(s *domain.State) error {
		for i := range s.Expenses {
			if s.Expenses[i].ID == cmd.ID {
				s.Expenses = append(s.Expenses[:i], s.Expenses[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("expense %s: %w", cmd.ID, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Expense deleted", domain.SeveritySuccess)
	return nil
}
