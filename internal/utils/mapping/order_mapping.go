package mapping

import (
	"github.com/SscSPs/retail_ledger/internal/core/domain"
	"github.com/SscSPs/retail_ledger/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		OrderNumber:   d.OrderNumber,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		OrderDate:     d.OrderDate,
		Total:         d.Total,
		PaidAmount:    d.PaidAmount,
		DueAmount:     d.DueAmount,
		PaymentStatus: string(d.PaymentStatus),
		IsDeleted:     d.IsDeleted,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:       m.OrderID,
		OrderNumber:   m.OrderNumber,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		OrderDate:     m.OrderDate,
		Total:         m.Total,
		PaidAmount:    m.PaidAmount,
		DueAmount:     m.DueAmount,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		IsDeleted:     m.IsDeleted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDomainOrders converts a slice of model Orders
func ToDomainOrders(ms []models.Order) []domain.Order {
	out := make([]domain.Order, len(ms))
	for i, m := range ms {
		out[i] = ToDomainOrder(m)
	}
	return out
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:     d.PaymentID,
		PaymentNumber: d.PaymentNumber,
		PartyType:     string(d.PartyType),
		PartyID:       d.PartyID,
		PartyName:     d.PartyName,
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate,
		ReferenceID:   d.ReferenceID,
		IsDeleted:     d.IsDeleted,
		CreatedAt:     d.CreatedAt,
	}
	if d.ReferenceType != domain.PaymentRefNone {
		rt := string(d.ReferenceType)
		m.ReferenceType = &rt
	}
	if d.Notes != "" {
		m.Notes = &d.Notes
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:     m.PaymentID,
		PaymentNumber: m.PaymentNumber,
		PartyType:     domain.PartyType(m.PartyType),
		PartyID:       m.PartyID,
		PartyName:     m.PartyName,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		ReferenceID:   m.ReferenceID,
		IsDeleted:     m.IsDeleted,
		CreatedAt:     m.CreatedAt,
	}
	if m.ReferenceType != nil {
		d.ReferenceType = domain.PaymentReferenceType(*m.ReferenceType)
	}
	if m.Notes != nil {
		d.Notes = *m.Notes
	}
	return d
}

// ToDomainPayments converts a slice of model Payments
func ToDomainPayments(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}

// ToDomainPaymentApplications converts a slice of model PaymentApplications
func ToDomainPaymentApplications(ms []models.PaymentApplication) []domain.PaymentApplication {
	out := make([]domain.PaymentApplication, len(ms))
	for i, m := range ms {
		out[i] = domain.PaymentApplication{
			PaymentID: m.PaymentID,
			OrderID:   m.OrderID,
			Amount:    m.Amount,
			CreatedAt: m.CreatedAt,
		}
	}
	return out
}

// ToDomainPurchaseBill converts a model PurchaseBill to a domain PurchaseBill
func ToDomainPurchaseBill(m models.PurchaseBill) domain.PurchaseBill {
	return domain.PurchaseBill{
		BillID:       m.BillID,
		BillNumber:   m.BillNumber,
		SupplierID:   m.SupplierID,
		SupplierName: m.SupplierName,
		BillDate:     m.BillDate,
		Total:        m.Total,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainDailySummary converts a model DailySummary to a domain DailySummary
func ToDomainDailySummary(m models.DailySummary) domain.DailySummary {
	return domain.DailySummary{
		Date:                m.SummaryDate,
		OpeningBalance:      m.OpeningBalance,
		OpeningBalanceSetAt: m.OpeningBalanceSetAt,
		OpeningBalanceSetBy: m.OpeningBalanceSetBy,
		TotalSales:          m.TotalSales,
		TotalOrders:         m.TotalOrders,
		UpdatedAt:           m.UpdatedAt,
	}
}
