package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/speed-edit-api/internal/application/dto"
	"github.com/jhoicas/speed-edit-api/internal/application/speededit"
	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/pkg/logger"
)

// SpeedEditHandler maneja las peticiones del editor rápido de stock y ubicación (protegido).
type SpeedEditHandler struct {
	uc       *speededit.UseCase
	maxBatch int
	log      *logger.Logger
}

// NewSpeedEditHandler construye el handler. maxBatch <= 0 = sin límite.
func NewSpeedEditHandler(uc *speededit.UseCase, maxBatch int, log *logger.Logger) *SpeedEditHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SpeedEditHandler{uc: uc, maxBatch: maxBatch, log: log}
}

// UpdateStock godoc
// @Summary      Edición rápida de stock y ubicación por lote
// @Description  Aplica en orden cada instrucción (add_stock, delete_stock, replace_stock, location).
// @Description  Productos inexistentes y acciones desconocidas se omiten. Si el lote se corta por un
// @Description  error de infraestructura, lo ya aplicado no se revierte.
// @Tags         speed-edit
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchStockUpdateRequest  true  "products: [{product_id, stock_action, edit_value, open_orders_stock}]"
// @Success      200   {object}  dto.BatchStockUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/speed-edit/stock [post]
func (h *SpeedEditHandler) UpdateStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	// El lote solo se acepta en JSON: un formulario urlencoded se decodificaría vacío.
	if !c.Is("json") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "el lote debe enviarse como JSON"})
	}
	var in dto.BatchStockUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if h.maxBatch > 0 && len(in.Products) > h.maxBatch {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "BATCH_TOO_LARGE",
			Message: fmt.Sprintf("máximo %d instrucciones por lote", h.maxBatch),
		})
	}
	out, err := h.uc.UpdateStockFromRequest(c.UserContext(), userID, in)
	if err != nil {
		return h.fail(c, err)
	}
	if out.LogHTML, err = renderLogTable(out.Logs); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Detalle de producto para el editor rápido
// @Description  Resumen del producto, sus variaciones (si es variable) y su historial, más el fragmento HTML.
// @Tags         speed-edit
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/speed-edit/products/{id} [get]
func (h *SpeedEditHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	out, err := h.uc.GetProductDetail(c.UserContext(), int64(id))
	if err != nil {
		return h.fail(c, err)
	}
	if out.HTML, err = renderProductDetail(out); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// SaveProductForm godoc
// @Summary      Guardar formulario de stock de un producto
// @Description  Campos: add_stock, delete_stock, replace_stock, on_orders; para variaciones <campo>_<variationID>.
// @Description  Acepta application/x-www-form-urlencoded o un objeto JSON. Valor 0 o vacío = sin cambio.
// @Tags         speed-edit
// @Security     Bearer
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/speed-edit/products/{id}/form [post]
func (h *SpeedEditHandler) SaveProductForm(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	fields, err := formFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SaveProductForm(c.UserContext(), userID, int64(id), fields); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLog godoc
// @Summary      Historial de ediciones rápidas
// @Tags         speed-edit
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int  false  "Filtrar por producto de primer nivel"
// @Param        limit       query  int  false  "Máximo de filas (por defecto SPEED_EDIT_LOG_LIMIT, tope 500)"
// @Success      200  {object}  dto.EditLogListResponse
// @Router       /api/speed-edit/log [get]
func (h *SpeedEditHandler) ListLog(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id", 0)
	limit := c.QueryInt("limit", 0)
	if productID < 0 || limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y limit deben ser positivos"})
	}
	out, err := h.uc.ListLog(c.UserContext(), int64(productID), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// ExportLogPDF godoc
// @Summary      Reporte PDF del historial de un producto
// @Tags         speed-edit
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/speed-edit/products/{id}/log.pdf [get]
func (h *SpeedEditHandler) ExportLogPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	doc, err := h.uc.ExportLogPDF(c.UserContext(), int64(id))
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="historial-%d.pdf"`, id))
	return c.Send(doc)
}

// fail traduce errores del caso de uso a respuestas HTTP.
func (h *SpeedEditHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, speededit.ErrReportDisabled):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "REPORT_DISABLED", Message: "reporte PDF no disponible"})
	}
	h.log.Error().Err(err).Str("path", c.Path()).Int64("user_id", GetUserID(c)).Msg("error en editor rápido")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// formFields lee los campos con nombre del formulario: JSON (objeto plano) o urlencoded.
func formFields(c *fiber.Ctx) (map[string]string, error) {
	fields := make(map[string]string)
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		var raw map[string]dto.FlexValue
		if err := c.BodyParser(&raw); err != nil {
			return nil, err
		}
		for k, v := range raw {
			fields[k] = v.String()
		}
		return fields, nil
	}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields, nil
}
