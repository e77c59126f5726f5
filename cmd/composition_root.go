package cmd

import (
	"custody/internal/adapters/out/fanout"
	"custody/internal/adapters/out/kafka"
	"custody/internal/adapters/out/memory"
	"custody/internal/adapters/out/postgres/auditrepo"
	"custody/internal/core/application/usecases/commands"
	"custody/internal/core/application/usecases/queries"
	"custody/internal/core/domain/model/contract"
	"custody/internal/core/domain/model/kernel"
	"custody/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	store          *memory.Store
	uowFactory     *memory.UnitOfWorkFactory
	auditPublisher ports.AuditPublisher
}

// NewCompositionRoot wires the in-memory contract store against the audit
// sinks. The contract starts in the Prepare phase, owned by the identity from
// the configuration.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	owner, err := kernel.IdentityFromString(configs.OwnerID, configs.OwnerName)
	if err != nil {
		return CompositionRoot{}, err
	}

	aggregate, err := contract.NewContract(owner)
	if err != nil {
		return CompositionRoot{}, err
	}

	store, err := memory.NewStore(aggregate)
	if err != nil {
		return CompositionRoot{}, err
	}

	auditPublisher := fanout.NewPublisher(
		auditrepo.NewGormAuditRepository(gormDB),
		kafka.NewAuditPublisher(configs.KafkaHost, configs.KafkaAuditTopic),
	)

	return CompositionRoot{
		store:          store,
		uowFactory:     memory.NewUnitOfWorkFactory(store),
		auditPublisher: auditPublisher,
	}, nil
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateInitContractCommandHandler() commands.InitContractCommandHandler {
	return commands.NewInitContractCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateSignContractCommandHandler() commands.SignContractCommandHandler {
	return commands.NewSignContractCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateSignShipmentCommandHandler() commands.SignShipmentCommandHandler {
	return commands.NewSignShipmentCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateHandOverShipmentCommandHandler() commands.HandOverShipmentCommandHandler {
	return commands.NewHandOverShipmentCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateReceiveShipmentCommandHandler() commands.ReceiveShipmentCommandHandler {
	return commands.NewReceiveShipmentCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateItemSnapshotQueryHandler() queries.ItemSnapshotQueryHandler {
	return queries.NewItemSnapshotQueryHandler(c.store, c.auditPublisher)
}

func (c *CompositionRoot) CreateShipmentSnapshotQueryHandler() queries.ShipmentSnapshotQueryHandler {
	return queries.NewShipmentSnapshotQueryHandler(c.store, c.auditPublisher)
}

func (c *CompositionRoot) CreateCourierHoldingQueryHandler() queries.CourierHoldingQueryHandler {
	return queries.NewCourierHoldingQueryHandler(c.store, c.auditPublisher)
}

func (c *CompositionRoot) CreateCountsQueryHandler() queries.CountsQueryHandler {
	return queries.NewCountsQueryHandler(c.store)
}

// ContractReader exposes the committed-snapshot reader for background jobs.
func (c *CompositionRoot) ContractReader() queries.ContractReader {
	return c.store
}

func (c *CompositionRoot) contractUoWFactory() commands.ContractUoWFactory {
	return FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
}

type FuncContractUoWFactory func() commands.ContractUoW

func (f FuncContractUoWFactory) Create() commands.ContractUoW {
	return f()
}
