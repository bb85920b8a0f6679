package services

import (
	"time"

	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/core/snapshot"
	"github.com/SscSPs/def_finance/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// sheets may be nil when no spreadsheet is configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, entries *snapshot.Loader, cash CashState, sheets portsrepo.SheetSource) *portssvc.ServiceContainer {
	clock := []ClockOption{WithClock(time.Now), WithLocation(cfg.Location)}

	container := &portssvc.ServiceContainer{}

	// Every write drops the cached snapshot so reports see it immediately
	container.Entry = NewEntryService(repos.EntryRepo, entries, clock...)
	container.Reporting = NewReportingService(entries, cash, cfg.ChartMonthsSpan, clock...)
	container.Cash = NewCashService(cash)
	container.Registry = NewRegistryService(repos.RegistryRepo, clock...)
	container.Import = NewImportService(sheets, repos.EntryRepo, entries, cfg.GoogleSheetsRange, clock...)

	return container
}
