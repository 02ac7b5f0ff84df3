package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
)

const maxPageLimit = 500

// MovementHandler expone el motor de saldos: registro e historial de movimientos (protegido).
type MovementHandler struct {
	engine *inventory.BalanceEngine
}

// NewMovementHandler construye el handler.
func NewMovementHandler(engine *inventory.BalanceEngine) *MovementHandler {
	return &MovementHandler{engine: engine}
}

// Record godoc
// @Summary      Registrar movimiento (entrada/salida)
// @Description  Ajusta el saldo y agrega la fila al ledger en una sola transacción.
// @Description  actor_id es opcional: por defecto el usuario del token.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "item_id, kind (IN|OUT), magnitude > 0, occurred_at, note"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.engine.RecordMovementFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de movimientos
// @Description  Más reciente primero (desempate por ID). limit=0 o ausente devuelve todo.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        item_id   query  string  false  "Filtrar por item"
// @Param        actor_id  query  string  false  "Filtrar por responsable"
// @Param        from      query  string  false  "Desde (RFC3339)"
// @Param        to        query  string  false  "Hasta (RFC3339)"
// @Param        limit     query  int     false  "Máximo 500"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	q := dto.ListMovementsQuery{
		ItemID:  c.Query("item_id"),
		ActorID: c.Query("actor_id"),
		Limit:   c.QueryInt("limit", 0),
		Offset:  c.QueryInt("offset", 0),
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	var err error
	if q.From, err = parseTimeQuery(c, "from"); err != nil {
		return badRequest(c, "VALIDATION", "from debe ser RFC3339")
	}
	if q.To, err = parseTimeQuery(c, "to"); err != nil {
		return badRequest(c, "VALIDATION", "to debe ser RFC3339")
	}

	out, err := h.engine.ListMovementsFromQuery(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
