package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/barcode"
	"fulfillment/internal/adapters/out/pdf"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/remoteapi"
	"fulfillment/internal/core/application/orchestrator"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	remote     *remoteapi.Client
	statsStore ports.StatsStore
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	remote *remoteapi.Client,
	statsStore ports.StatsStore,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		remote:     remote,
		statsStore: statsStore,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateGetPipelineQueryHandler() queries.GetPipelineQueryHandler {
	return queries.NewGetPipelineQueryHandler(c.remote, c.remote, c.remote, c.remote)
}

func (c *CompositionRoot) CreateListProductionQueryHandler() queries.ListProductionQueryHandler {
	return queries.NewListProductionQueryHandler(c.remote)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.remote)
}

func (c *CompositionRoot) CreateGetDeliveryStatsQueryHandler() queries.GetDeliveryStatsQueryHandler {
	return queries.NewGetDeliveryStatsQueryHandler(c.statsStore, c.remote, nil)
}

func (c *CompositionRoot) CreateGetDocumentHistoryQueryHandler() queries.GetDocumentHistoryQueryHandler {
	return queries.NewGetDocumentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	return commands.NewApplyTransitionCommandHandler(c.remote, c.remote, c.remote)
}

func (c *CompositionRoot) CreateMoveToPackagingCommandHandler() commands.MoveToPackagingCommandHandler {
	return commands.NewMoveToPackagingCommandHandler(c.remote)
}

func (c *CompositionRoot) CreateUpdateProductionDetailsCommandHandler() commands.UpdateProductionDetailsCommandHandler {
	return commands.NewUpdateProductionDetailsCommandHandler(c.remote)
}

func (c *CompositionRoot) CreateSavePackagesCommandHandler() commands.SavePackagesCommandHandler {
	return commands.NewSavePackagesCommandHandler(c.remote)
}

func (c *CompositionRoot) CreateAddPackageDetailCommandHandler() commands.AddPackageDetailCommandHandler {
	return commands.NewAddPackageDetailCommandHandler(c.remote)
}

func (c *CompositionRoot) CreateUpdatePackageDetailCommandHandler() commands.UpdatePackageDetailCommandHandler {
	return commands.NewUpdatePackageDetailCommandHandler(c.remote)
}

func (c *CompositionRoot) CreateSaveDeliveryCommandHandler() commands.SaveDeliveryCommandHandler {
	return commands.NewSaveDeliveryCommandHandler(c.remote, c.remote)
}

func (c *CompositionRoot) CreateGenerateDocumentCommandHandler() commands.GenerateDocumentCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateDocumentCommandHandler(
		c.CreateGetPipelineQueryHandler(),
		barcode.NewCode128Renderer(),
		pdf.NewComposer(),
		f,
		c.configs.Company(),
		nil,
	)
}

func (c *CompositionRoot) CreateRefreshDeliveryStatsCommandHandler() commands.RefreshDeliveryStatsCommandHandler {
	return commands.NewRefreshDeliveryStatsCommandHandler(c.remote, c.statsStore, nil)
}

func (c *CompositionRoot) CreateOrchestrator() *orchestrator.Orchestrator {
	return orchestrator.New(c.configs.ProductionLine, orchestrator.Handlers{
		Pipeline:                c.CreateGetPipelineQueryHandler(),
		ApplyTransition:         c.CreateApplyTransitionCommandHandler(),
		MoveToPackaging:         c.CreateMoveToPackagingCommandHandler(),
		UpdateProductionDetails: c.CreateUpdateProductionDetailsCommandHandler(),
		SavePackages:            c.CreateSavePackagesCommandHandler(),
		AddPackageDetail:        c.CreateAddPackageDetailCommandHandler(),
		UpdatePackageDetail:     c.CreateUpdatePackageDetailCommandHandler(),
		SaveDelivery:            c.CreateSaveDeliveryCommandHandler(),
		GenerateDocument:        c.CreateGenerateDocumentCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateOrchestrator(),
		c.CreateListDeliveriesQueryHandler(),
		c.CreateListProductionQueryHandler(),
		c.CreateGetDeliveryStatsQueryHandler(),
		c.CreateGetDocumentHistoryQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshDeliveryStatsCommandHandler(),
		c.configs.StatsSchedule,
		c.configs.StatsTimeout,
		c.logger,
	)
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}
