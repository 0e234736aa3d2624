package pgsql

import (
	portsrepo "github.com/SscSPs/retail_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(txm *TxManager) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    txm,
		AccountRepo:  newPgxAccountRepository(txm),
		JournalRepo:  newPgxJournalRepository(txm),
		BalanceRepo:  newReportingRepository(txm),
		OrderRepo:    newPgxOrderRepository(txm),
		PaymentRepo:  newPgxPaymentRepository(txm),
		PurchaseRepo: newPgxPurchaseRepository(txm),
		SummaryRepo:  newPgxDailySummaryRepository(txm),
	}
}
