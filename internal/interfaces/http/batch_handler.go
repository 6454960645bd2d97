package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/application/inventory"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// BatchHandler maneja el ciclo de vida de los lotes de producción.
type BatchHandler struct {
	uc *inventory.BatchLifecycle
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *inventory.BatchLifecycle) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote de producción
// @Description  Crea el lote, descuenta el stock global y, si se indica tienda, asigna el lote a ella.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "Datos del lote (fechas YYYY-MM-DD)"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateFromRequest(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(out))
}

// ListByProduct godoc
// @Summary      Listar lotes de un producto
// @Tags         batches
// @Produce      json
// @Param        product_id  query  int  true  "ID del producto"
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/batches [get]
func (h *BatchHandler) ListByProduct(c *fiber.Ctx) error {
	productID := int64(c.QueryInt("product_id"))
	if productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	batches, err := h.uc.ListByProduct(c.Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for i := range batches {
		out = append(out, toBatchResponse(&batches[i]))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Description  Ajusta cantidad actual, costo o estado. El código y el producto son inmutables.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del lote"
// @Param        body  body  dto.UpdateBatchRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BatchResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateBatchRequest
	if err := decodeBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBatchResponse(out))
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         batches
// @Param        id  path  int  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toBatchResponse(b *entity.ProductBatch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:              b.ID,
		BatchCode:       b.BatchCode,
		ProductID:       b.ProductID,
		StoreID:         b.StoreID,
		ProductionDate:  b.ProductionDate.Format("2006-01-02"),
		ExpirationDate:  b.ExpirationDate.Format("2006-01-02"),
		InitialQuantity: b.InitialQuantity,
		CurrentQuantity: b.CurrentQuantity,
		BatchCost:       b.BatchCost,
		IsActive:        b.IsActive,
	}
}
