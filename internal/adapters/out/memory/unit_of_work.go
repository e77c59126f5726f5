package memory

import (
	"context"
	"errors"

	"custody/internal/core/domain/model/contract"
	"custody/internal/core/ports"
)

var (
	// ErrTransactionAlreadyStarted is returned when Begin is called twice on
	// the same unit of work.
	ErrTransactionAlreadyStarted = errors.New("transaction already started")

	// ErrTransactionNotStarted is returned when Commit is called before Begin.
	ErrTransactionNotStarted = errors.New("transaction not started")
)

// UnitOfWork implements the snapshot-swap transaction over a Store. Begin
// takes the store's write lock; the repository works on a deep clone of the
// committed aggregate; Commit swaps the store pointer to the staged clone.
// Rollback after Commit is a no-op so handlers can defer it.
type UnitOfWork struct {
	store  *Store
	repo   *contractRepository
	active bool
}

// UnitOfWorkFactory creates one UnitOfWork per command execution.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work bound to the shared store.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// Begin locks the store for writing. Queries keep serving the previously
// committed snapshot until Commit.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyStarted
	}
	u.store.mu.Lock()
	u.active = true
	u.repo = &contractRepository{uow: u}
	return nil
}

// Commit publishes the staged aggregate, if any, and releases the write lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrTransactionNotStarted
	}
	if u.repo.staged != nil {
		u.store.current = u.repo.staged
	}
	u.active = false
	u.store.mu.Unlock()
	return nil
}

// Rollback discards staged changes and releases the write lock. Safe to call
// after Commit.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.active = false
	u.store.mu.Unlock()
	return nil
}

// ContractRepository returns the repository bound to this transaction.
func (u *UnitOfWork) ContractRepository() ports.ContractRepository {
	return u.repo
}

// contractRepository hands out a private clone of the committed aggregate and
// stages updates for the commit swap.
type contractRepository struct {
	uow    *UnitOfWork
	staged *contract.Contract
}

// Get returns a deep clone of the committed aggregate. Mutations stay private
// to the transaction until Update and Commit.
func (r *contractRepository) Get(_ context.Context) (*contract.Contract, error) {
	if !r.uow.active {
		return nil, ErrTransactionNotStarted
	}
	return r.uow.store.current.Clone(), nil
}

// Update stages the aggregate for publication on Commit.
func (r *contractRepository) Update(_ context.Context, aggregate *contract.Contract) error {
	if !r.uow.active {
		return ErrTransactionNotStarted
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.staged = aggregate
	return nil
}
