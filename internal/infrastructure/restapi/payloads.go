package restapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// isoDate fecha-solo en formato ISO (YYYY-MM-DD), como la maneja el backend.
type isoDate time.Time

const isoDateLayout = "2006-01-02"

func (d isoDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(d).Format(isoDateLayout))), nil
}

func (d *isoDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = isoDate(time.Time{})
		return nil
	}
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		// Algunos endpoints devuelven timestamp completo
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("fecha inválida %q: %w", s, err)
		}
	}
	*d = isoDate(t)
	return nil
}

// productPayload forma de Product en el wire del backend. El campo
// minStockLevel transporta el stock global (semántica heredada del backend);
// el dominio lo separa en Product.CurrentGlobalStock.
type productPayload struct {
	ID             int64           `json:"id,omitempty"`
	Name           string          `json:"name"`
	Flavor         string          `json:"flavor,omitempty"`
	Size           string          `json:"size,omitempty"`
	CategoryID     int64           `json:"categoryId"`
	ProductionCost decimal.Decimal `json:"productionCost"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	RetailPrice    decimal.Decimal `json:"retailPrice"`
	MinStockLevel  int             `json:"minStockLevel"`
	Barcode        string          `json:"barcode,omitempty"`
	Description    string          `json:"description,omitempty"`
	IsActive       bool            `json:"isActive"`
}

func (p productPayload) toEntity() entity.Product {
	return entity.Product{
		ID:                 p.ID,
		Name:               p.Name,
		Flavor:             p.Flavor,
		Size:               p.Size,
		CategoryID:         p.CategoryID,
		ProductionCost:     p.ProductionCost,
		WholesalePrice:     p.WholesalePrice,
		RetailPrice:        p.RetailPrice,
		CurrentGlobalStock: p.MinStockLevel,
		Barcode:            p.Barcode,
		Description:        p.Description,
		IsActive:           p.IsActive,
	}
}

func productToPayload(p *entity.Product) productPayload {
	return productPayload{
		ID:             p.ID,
		Name:           p.Name,
		Flavor:         p.Flavor,
		Size:           p.Size,
		CategoryID:     p.CategoryID,
		ProductionCost: p.ProductionCost,
		WholesalePrice: p.WholesalePrice,
		RetailPrice:    p.RetailPrice,
		MinStockLevel:  p.CurrentGlobalStock,
		Barcode:        p.Barcode,
		Description:    p.Description,
		IsActive:       p.IsActive,
	}
}

type storePayload struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Type     string `json:"typeStore"`
	IsActive bool   `json:"isActive"`
}

func (s storePayload) toEntity() entity.Store {
	return entity.Store{ID: s.ID, Name: s.Name, Address: s.Address, Phone: s.Phone, Type: s.Type, IsActive: s.IsActive}
}

func storeToPayload(s *entity.Store) storePayload {
	return storePayload{ID: s.ID, Name: s.Name, Address: s.Address, Phone: s.Phone, Type: s.Type, IsActive: s.IsActive}
}

// productStorePayload forma de ProductStore en el wire. Aquí minStockLevel es
// el umbral de reorden real; el dominio lo llama ReorderThreshold.
type productStorePayload struct {
	ID            int64 `json:"id,omitempty"`
	ProductID     int64 `json:"productId"`
	StoreID       int64 `json:"storeId"`
	CurrentStock  int   `json:"currentStock"`
	MinStockLevel int   `json:"minStockLevel"`
}

func (ps productStorePayload) toEntity() entity.ProductStore {
	return entity.ProductStore{
		ID:               ps.ID,
		ProductID:        ps.ProductID,
		StoreID:          ps.StoreID,
		CurrentStock:     ps.CurrentStock,
		ReorderThreshold: ps.MinStockLevel,
	}
}

func productStoreToPayload(ps *entity.ProductStore) productStorePayload {
	return productStorePayload{
		ID:            ps.ID,
		ProductID:     ps.ProductID,
		StoreID:       ps.StoreID,
		CurrentStock:  ps.CurrentStock,
		MinStockLevel: ps.ReorderThreshold,
	}
}

type batchPayload struct {
	ID              int64           `json:"id,omitempty"`
	BatchCode       string          `json:"batchCode"`
	ProductID       int64           `json:"productId"`
	StoreID         *int64          `json:"storeId,omitempty"`
	ProductionDate  isoDate         `json:"productionDate"`
	ExpirationDate  isoDate         `json:"expirationDate"`
	InitialQuantity int             `json:"initialQuantity"`
	CurrentQuantity int             `json:"currentQuantity"`
	BatchCost       decimal.Decimal `json:"batchCost"`
	IsActive        bool            `json:"isActive"`
}

func (b batchPayload) toEntity() entity.ProductBatch {
	return entity.ProductBatch{
		ID:              b.ID,
		BatchCode:       b.BatchCode,
		ProductID:       b.ProductID,
		StoreID:         b.StoreID,
		ProductionDate:  time.Time(b.ProductionDate),
		ExpirationDate:  time.Time(b.ExpirationDate),
		InitialQuantity: b.InitialQuantity,
		CurrentQuantity: b.CurrentQuantity,
		BatchCost:       b.BatchCost,
		IsActive:        b.IsActive,
	}
}

func batchToPayload(b *entity.ProductBatch) batchPayload {
	return batchPayload{
		ID:              b.ID,
		BatchCode:       b.BatchCode,
		ProductID:       b.ProductID,
		StoreID:         b.StoreID,
		ProductionDate:  isoDate(b.ProductionDate),
		ExpirationDate:  isoDate(b.ExpirationDate),
		InitialQuantity: b.InitialQuantity,
		CurrentQuantity: b.CurrentQuantity,
		BatchCost:       b.BatchCost,
		IsActive:        b.IsActive,
	}
}

type movementPayload struct {
	ID          int64     `json:"id,omitempty"`
	Type        string    `json:"movementType"`
	ProductID   int64     `json:"productId"`
	BatchID     *int64    `json:"batchId,omitempty"`
	FromStoreID *int64    `json:"fromStoreId,omitempty"`
	ToStoreID   *int64    `json:"toStoreId,omitempty"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	UserID      int64     `json:"userId"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

func (m movementPayload) toEntity() entity.InventoryMovement {
	return entity.InventoryMovement{
		ID:          m.ID,
		Type:        m.Type,
		ProductID:   m.ProductID,
		BatchID:     m.BatchID,
		FromStoreID: m.FromStoreID,
		ToStoreID:   m.ToStoreID,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		UserID:      m.UserID,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

func movementToPayload(m *entity.InventoryMovement) movementPayload {
	return movementPayload{
		Type:        m.Type,
		ProductID:   m.ProductID,
		BatchID:     m.BatchID,
		FromStoreID: m.FromStoreID,
		ToStoreID:   m.ToStoreID,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		UserID:      m.UserID,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

type clientPayload struct {
	ID                   int64  `json:"id,omitempty"`
	NameLastname         string `json:"nameLastname"`
	TypeIdentification   string `json:"typeIdentification"`
	NumberIdentification string `json:"numberIdentification"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
	RequiresInvoice      bool   `json:"requiresInvoice"`
	IsActive             bool   `json:"isActive"`
}

func (c clientPayload) toEntity() entity.Client {
	return entity.Client{
		ID:                   c.ID,
		NameLastname:         c.NameLastname,
		TypeIdentification:   c.TypeIdentification,
		NumberIdentification: c.NumberIdentification,
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
		RequiresInvoice:      c.RequiresInvoice,
		IsActive:             c.IsActive,
	}
}

func clientToPayload(c *entity.Client) clientPayload {
	return clientPayload{
		ID:                   c.ID,
		NameLastname:         c.NameLastname,
		TypeIdentification:   c.TypeIdentification,
		NumberIdentification: c.NumberIdentification,
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
		RequiresInvoice:      c.RequiresInvoice,
		IsActive:             c.IsActive,
	}
}

type saleDetailPayload struct {
	ID        int64           `json:"id,omitempty"`
	SaleID    int64           `json:"saleId,omitempty"`
	ProductID int64           `json:"productId"`
	BatchID   *int64          `json:"batchId,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func (d saleDetailPayload) toEntity() entity.SaleDetail {
	return entity.SaleDetail{
		ID:        d.ID,
		SaleID:    d.SaleID,
		ProductID: d.ProductID,
		BatchID:   d.BatchID,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		Subtotal:  d.Subtotal,
	}
}

type salePayload struct {
	ID            int64               `json:"id,omitempty"`
	SaleNumber    string              `json:"saleNumber"`
	UserID        int64               `json:"userId"`
	ClientID      *int64              `json:"clientId,omitempty"`
	StoreID       int64               `json:"storeId"`
	PaymentMethod string              `json:"paymentMethod"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Tax           decimal.Decimal     `json:"tax"`
	Total         decimal.Decimal     `json:"total"`
	IsInvoiced    bool                `json:"isInvoiced"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt,omitempty"`
	Details       []saleDetailPayload `json:"details,omitempty"`
}

func (s salePayload) toEntity() entity.Sale {
	return entity.Sale{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		UserID:        s.UserID,
		ClientID:      s.ClientID,
		StoreID:       s.StoreID,
		PaymentMethod: s.PaymentMethod,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		IsInvoiced:    s.IsInvoiced,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

func saleToPayload(s *entity.Sale, details []entity.SaleDetail) salePayload {
	out := salePayload{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		UserID:        s.UserID,
		ClientID:      s.ClientID,
		StoreID:       s.StoreID,
		PaymentMethod: s.PaymentMethod,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		IsInvoiced:    s.IsInvoiced,
		Notes:         s.Notes,
	}
	for _, d := range details {
		out.Details = append(out.Details, saleDetailPayload{
			ProductID: d.ProductID,
			BatchID:   d.BatchID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return out
}

type categoryPayload struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c categoryPayload) toEntity() entity.Category {
	return entity.Category{ID: c.ID, Name: c.Name, Description: c.Description}
}

type userPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

func (u userPayload) toEntity() entity.User {
	return entity.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, IsActive: u.IsActive}
}
