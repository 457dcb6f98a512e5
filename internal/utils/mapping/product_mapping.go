package mapping

import (
	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/models"
)

// ToModelProduct converts a domain.Product for DB storage.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductCode:     d.ProductCode,
		ProductName:     d.ProductName,
		Category:        d.Category,
		Brand:           d.Brand,
		BaseUnit:        d.BaseUnit,
		SecondaryUnit:   d.SecondaryUnit,
		ConversionRate:  d.ConversionRate,
		MRP:             d.MRP,
		Discount:        d.Discount,
		BasePrice:       d.BasePrice,
		SecondaryPrice:  d.SecondaryPrice,
		GST:             d.GST,
		GSTCategory:     models.GSTCategory(d.GSTCategory),
		StockQuantity:   d.StockQuantity,
		LowStockAlert:   d.LowStockAlert,
		SupplierName:    d.SupplierName,
		BatchNumber:     d.BatchNumber,
		ManufactureDate: d.ManufactureDate,
		ExpiryDate:      d.ExpiryDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a models.Product read from the DB.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductCode:     m.ProductCode,
		ProductName:     m.ProductName,
		Category:        m.Category,
		Brand:           m.Brand,
		BaseUnit:        m.BaseUnit,
		SecondaryUnit:   m.SecondaryUnit,
		ConversionRate:  m.ConversionRate,
		MRP:             m.MRP,
		Discount:        m.Discount,
		BasePrice:       m.BasePrice,
		SecondaryPrice:  m.SecondaryPrice,
		GST:             m.GST,
		GSTCategory:     domain.GSTCategory(m.GSTCategory),
		StockQuantity:   m.StockQuantity,
		LowStockAlert:   m.LowStockAlert,
		SupplierName:    m.SupplierName,
		BatchNumber:     m.BatchNumber,
		ManufactureDate: m.ManufactureDate,
		ExpiryDate:      m.ExpiryDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
