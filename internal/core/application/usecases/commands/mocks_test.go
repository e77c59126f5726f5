package commands_test

import (
	"context"

	"custody/internal/core/application/usecases/commands"
	"custody/internal/core/domain/model/contract"
	"custody/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockContractRepository struct{ mock.Mock }

func (m *MockContractRepository) Get(ctx context.Context) (*contract.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) Update(ctx context.Context, aggregate *contract.Contract) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockContractUoW struct{ mock.Mock }

func (m *MockContractUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}

type MockContractUoWFactory struct{ mock.Mock }

func (m *MockContractUoWFactory) Create() commands.ContractUoW {
	args := m.Called()
	return args.Get(0).(commands.ContractUoW)
}
