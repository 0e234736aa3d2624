package services

import (
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The registry comes first since every posting resolves accounts through it
	container.Accounts = NewAccountRegistryService(repos.AccountRepo)
	container.Ledger = NewLedgerPostingService(repos.TxManager, repos.JournalRepo, container.Accounts)
	container.Balance = NewBalanceService(repos.BalanceRepo, container.Accounts)
	container.Summary = NewSummaryService(repos.OrderRepo, repos.PaymentRepo, repos.SummaryRepo)

	container.Order = NewOrderService(repos.TxManager, repos.OrderRepo, repos.PaymentRepo, container.Ledger, container.Summary)
	container.Payment = NewPaymentService(repos.TxManager, repos.PaymentRepo, repos.OrderRepo, container.Order, container.Ledger)
	container.Purchase = NewPurchaseService(repos.TxManager, repos.PurchaseRepo, container.Ledger)

	return container
}
