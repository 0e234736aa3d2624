package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager    TransactionManager
	AccountRepo  AccountRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	BalanceRepo  BalanceReader
	OrderRepo    OrderRepositoryFacade
	PaymentRepo  PaymentRepositoryFacade
	PurchaseRepo PurchaseRepositoryFacade
	SummaryRepo  DailySummaryRepositoryFacade
}
