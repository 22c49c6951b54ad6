package mapping

import (
	"github.com/fegundez/maqtrack/internal/core/domain"
	"github.com/fegundez/maqtrack/internal/models"
)

// ToModelCostItem converts a domain CostItem to a model CostItem.
func ToModelCostItem(d domain.CostItem) models.CostItem {
	return models.CostItem{
		CostItemID:  d.CostItemID,
		PurchaseID:  d.PurchaseID,
		Category:    string(d.Category),
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCostItem converts a model CostItem to a domain CostItem.
func ToDomainCostItem(m models.CostItem) domain.CostItem {
	return domain.CostItem{
		CostItemID:  m.CostItemID,
		PurchaseID:  m.PurchaseID,
		Category:    domain.CostCategory(m.Category),
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
