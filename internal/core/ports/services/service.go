package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Accounts AccountRegistrySvc
	Ledger   LedgerPostingSvcFacade
	Balance  BalanceSvc
	Summary  SummarySvcFacade
	Order    OrderSvcFacade
	Payment  PaymentSvcFacade
	Purchase PurchaseSvcFacade
}

// StaticDataService seeds reference data the rest of the system relies on.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
