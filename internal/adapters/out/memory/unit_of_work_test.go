package memory_test

import (
	"testing"
	"time"

	"custody/internal/adapters/out/memory"
	"custody/internal/core/domain/model/contract"
	"custody/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*memory.Store, kernel.Identity) {
	t.Helper()

	owner, err := kernel.NewIdentity("owner")
	require.NoError(t, err)
	aggregate, err := contract.NewContract(owner)
	require.NoError(t, err)
	store, err := memory.NewStore(aggregate)
	require.NoError(t, err)
	return store, owner
}

func addItem(t *testing.T, aggregate *contract.Contract, owner kernel.Identity, name string) {
	t.Helper()

	volume, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	price, err := kernel.NewQuantity(10)
	require.NoError(t, err)
	_, err = aggregate.AddItem(owner, name, "", "pcs", volume, price)
	require.NoError(t, err)
}

func TestUnitOfWork_CommitPublishesStagedAggregate(t *testing.T) {
	ctx := t.Context()
	store, owner := newStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	repo := uow.ContractRepository()
	aggregate, err := repo.Get(ctx)
	require.NoError(t, err)
	addItem(t, aggregate, owner, "bolt")

	require.NoError(t, repo.Update(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))
	require.NoError(t, uow.Rollback(ctx)) // no-op after Commit

	committed, err := store.Contract(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, committed.ItemCount())
}

func TestUnitOfWork_RollbackDiscardsStagedAggregate(t *testing.T) {
	ctx := t.Context()
	store, owner := newStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	repo := uow.ContractRepository()
	aggregate, err := repo.Get(ctx)
	require.NoError(t, err)
	addItem(t, aggregate, owner, "bolt")
	require.NoError(t, repo.Update(ctx, aggregate))

	require.NoError(t, uow.Rollback(ctx))

	committed, err := store.Contract(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, committed.ItemCount())
}

func TestUnitOfWork_GetReturnsIsolatedClone(t *testing.T) {
	ctx := t.Context()
	store, owner := newStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	repo := uow.ContractRepository()
	aggregate, err := repo.Get(ctx)
	require.NoError(t, err)
	addItem(t, aggregate, owner, "bolt")

	// Mutation without Update must never leak into the committed snapshot.
	require.NoError(t, uow.Rollback(ctx))

	committed, err := store.Contract(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, committed.ItemCount())
}

func TestUnitOfWork_BeginTwiceFails(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.Begin(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrTransactionAlreadyStarted)
}

func TestUnitOfWork_CommitWithoutBeginFails(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	err := uow.Commit(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrTransactionNotStarted)
}

func TestUnitOfWork_SerializesWriters(t *testing.T) {
	ctx := t.Context()
	store, owner := newStore(t)
	factory := memory.NewUnitOfWorkFactory(store)

	first := factory.Create()
	require.NoError(t, first.Begin(ctx))

	secondStarted := make(chan struct{})
	secondDone := make(chan struct{})
	go func() {
		second := factory.Create()
		close(secondStarted)
		_ = second.Begin(ctx)
		_ = second.Rollback(ctx)
		close(secondDone)
	}()

	<-secondStarted
	// The second writer must block until the first releases the store.
	select {
	case <-secondDone:
		t.Fatal("second unit of work acquired the store while the first held it")
	case <-time.After(50 * time.Millisecond):
	}

	repo := first.ContractRepository()
	aggregate, err := repo.Get(ctx)
	require.NoError(t, err)
	addItem(t, aggregate, owner, "bolt")
	require.NoError(t, repo.Update(ctx, aggregate))
	require.NoError(t, first.Commit(ctx))

	<-secondDone

	committed, err := store.Contract(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, committed.ItemCount())
}
