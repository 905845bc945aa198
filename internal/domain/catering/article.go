package catering

import (
	"time"

	"github.com/google/uuid"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Article represents a catering catalog article (meal tray, beverage,
// equipment item) that order and delivery lines reference.
type Article struct {
	shared.TenantAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_article_tenant_code,priority:2"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Perishable  bool            `gorm:"not null;default:false"`
	Active      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Article) TableName() string {
	return "articles"
}

// NewArticle creates a new catalog article
func NewArticle(tenantID uuid.UUID, code, name, unit string, unitPrice valueobject.Money) (*Article, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Article code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Article code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Article name cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &Article{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		Unit:                unit,
		UnitPrice:           unitPrice.Amount(),
		Active:              true,
	}, nil
}

// Update updates the article display fields
func (a *Article) Update(name, description, unit string, unitPrice valueobject.Money) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Article name cannot be empty")
	}
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if unitPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	a.Name = name
	a.Description = description
	a.Unit = unit
	a.UnitPrice = unitPrice.Amount()
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// SetPerishable marks whether the article is perishable
func (a *Article) SetPerishable(perishable bool) {
	a.Perishable = perishable
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// Deactivate removes the article from active use.
// Historical order and delivery lines keep referencing it.
func (a *Article) Deactivate() error {
	if !a.Active {
		return shared.NewDomainError("INVALID_STATE", "Article is already inactive")
	}
	a.Active = false
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Activate returns a deactivated article to active use
func (a *Article) Activate() error {
	if a.Active {
		return shared.NewDomainError("INVALID_STATE", "Article is already active")
	}
	a.Active = true
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// GetUnitPriceMoney returns the unit price as Money value object
func (a *Article) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(a.UnitPrice)
}
