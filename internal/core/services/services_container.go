package services

import (
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Customer service first: billing depends on its credit resync.
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.BillRepo)

	container.Catalog = NewCatalogService(repos.ProductRepo, repos.StockRepo)
	container.Stock = NewStockService(repos.StockRepo)
	container.Billing = NewBillingService(repos.BillRepo, repos.ProductRepo, repos.StockRepo, container.Customer)
	container.Reporting = NewReportingService(repos.ProductRepo, repos.StockRepo, repos.BillRepo)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.CatalogSvcFacade  = (*catalogService)(nil)
	_ portssvc.StockSvcFacade    = (*stockService)(nil)
	_ portssvc.BillingSvcFacade  = (*billingService)(nil)
	_ portssvc.CustomerSvcFacade = (*customerService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)
