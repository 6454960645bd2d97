package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/application/inventory"
	dominv "github.com/Jwerthe/chocorocks-inventory/internal/domain/inventory"
)

// InventoryHandler maneja los movimientos de inventario y las consultas de stock.
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	lookup   *inventory.StockLookup
	lowStock *inventory.LowStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	register *inventory.RegisterMovementUseCase,
	lookup *inventory.StockLookup,
	lowStock *inventory.LowStockUseCase,
) *InventoryHandler {
	return &InventoryHandler{register: register, lookup: lookup, lowStock: lowStock}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Valida y aplica un movimiento IN, OUT o TRANSFER contra el backend.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  int  true  "Usuario que registra el movimiento"
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento a registrar"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.register.RegisterFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		MovementID:    out.MovementID,
		CorrelationID: out.CorrelationID,
		Warnings:      out.Warnings,
	})
}

// GetStock godoc
// @Summary      Snapshot de stock de un producto
// @Description  Stock global, stock por tienda y lotes disponibles en una sola respuesta.
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  int  true   "ID del producto"
// @Param        store_id    query  int  false  "Tienda (vacío = vista global)"
// @Success      200  {object}  dto.StockSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := int64(c.QueryInt("product_id"))
	if productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	var storeID *int64
	if s := int64(c.QueryInt("store_id")); s > 0 {
		storeID = &s
	}
	snap, err := h.lookup.Snapshot(c.Context(), productID, storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSnapshotResponse(snap))
}

// LowStockReport godoc
// @Summary      Reporte de stock bajo por tienda
// @Tags         reports
// @Produce      json
// @Param        store_id  query  int  false  "Filtrar por tienda"
// @Success      200  {array}  dto.LowStockItemDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStockReport(c *fiber.Ctx) error {
	var storeID *int64
	if s := int64(c.QueryInt("store_id")); s > 0 {
		storeID = &s
	}
	items, err := h.lowStock.Report(c.Context(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

func toSnapshotResponse(snap *dominv.StockSnapshot) dto.StockSnapshotResponse {
	out := dto.StockSnapshotResponse{
		ProductID:        snap.ProductID,
		StoreID:          snap.StoreID,
		ProductStock:     snap.ProductStock,
		StoreStock:       snap.StoreStock,
		ReorderThreshold: snap.ReorderThreshold,
		AvailableBatches: make([]dto.BatchSummaryDTO, 0, len(snap.AvailableBatches)),
		TakenAt:          snap.TakenAt,
	}
	for _, b := range snap.AvailableBatches {
		out.AvailableBatches = append(out.AvailableBatches, dto.BatchSummaryDTO{
			ID:              b.ID,
			BatchCode:       b.BatchCode,
			StoreID:         b.StoreID,
			CurrentQuantity: b.CurrentQuantity,
			ExpirationDate:  b.ExpirationDate.Format("2006-01-02"),
		})
	}
	return out
}
