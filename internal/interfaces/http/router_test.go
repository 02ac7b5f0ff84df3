package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/stock-ledger-api/internal/application/analytics"
	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
	"github.com/jhoicas/stock-ledger-api/pkg/metrics"
)

type testServer struct {
	app   *fiber.App
	token string
	user  dto.UserResponse
}

func newTestServer(t *testing.T, policy string) *testServer {
	t.Helper()
	store := memory.New()
	m := metrics.New("stock_ledger_test")
	engine, err := inventory.NewBalanceEngine(store, store.Movements(), inventory.EngineConfig{
		NegativeStock: policy,
		Observer:      m,
		Logger:        logger.Nop(),
	})
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.RouterDeps{
		ServiceName: "stock-ledger-test",
		ItemUC:      usecase.NewItemUseCase(store.Items()),
		Engine:      engine,
		LowStockUC:  inventory.NewLowStockUseCase(store.Items()),
		KardexUC:    inventory.NewKardexUseCase(store.Items(), store.Movements(), pdf.NewMarotoKardexGenerator("test")),
		AnalyticsUC: usecase.NewAnalyticsUseCase(store.Analytics()),
		DashboardUC: appanalytics.NewDashboardUseCase(store.Analytics(), store.Items()),
		AuthUC: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}).WithBcryptCost(bcrypt.MinCost),
		UserUC:    usecase.NewUserUseCase(store.Users()),
		JWTSecret: testJWTSecret,
		Store:     store,
		Logger:    logger.Nop(),
		Metrics:   m,
	})

	srv := &testServer{app: app}
	resp := srv.do(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "Ana Bodega", Email: "ana@example.com", Password: "secreto-largo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &srv.user)

	resp = srv.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: "ana@example.com", Password: "secreto-largo",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)
	srv.token = login.Token
	return srv
}

func (s *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

func (s *testServer) createItem(t *testing.T, name string, qty, min int64) dto.ItemResponse {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/items", dto.CreateItemRequest{Name: name, Quantity: qty, MinimumThreshold: min})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item dto.ItemResponse
	decode(t, resp, &item)
	return item
}

func TestRouter_RegistrarMovimientoAjustaSaldo(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	item := srv.createItem(t, "Tornillos", 10, 5)

	resp := srv.do(t, http.MethodPost, "/api/movements", dto.RecordMovementRequest{
		ItemID: item.ID, Kind: "OUT", Magnitude: 6,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.RecordMovementResponse
	decode(t, resp, &out)

	assert.Equal(t, int64(4), out.Item.Quantity)
	assert.True(t, out.Item.BelowMinimum)
	assert.Equal(t, "OUT", out.Movement.Kind)
	assert.Equal(t, srv.user.ID, out.Movement.ActorID, "el actor por defecto es el usuario del token")

	resp = srv.do(t, http.MethodGet, "/api/items/"+item.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.ItemResponse
	decode(t, resp, &got)
	assert.Equal(t, int64(4), got.Quantity)
}

func TestRouter_RegistrarMovimientoErrores(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockReject)
	item := srv.createItem(t, "Clavos", 2, 1)

	cases := []struct {
		name   string
		body   dto.RecordMovementRequest
		status int
		code   string
	}{
		{"magnitud cero", dto.RecordMovementRequest{ItemID: item.ID, Kind: "IN", Magnitude: 0}, http.StatusBadRequest, "VALIDATION"},
		{"tipo inválido", dto.RecordMovementRequest{ItemID: item.ID, Kind: "SIDEWAYS", Magnitude: 1}, http.StatusBadRequest, "VALIDATION"},
		{"item inexistente", dto.RecordMovementRequest{ItemID: "00000000-0000-0000-0000-0000000000ff", Kind: "IN", Magnitude: 1}, http.StatusNotFound, "NOT_FOUND"},
		{"stock insuficiente", dto.RecordMovementRequest{ItemID: item.ID, Kind: "OUT", Magnitude: 3}, http.StatusConflict, "INSUFFICIENT_STOCK"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := srv.do(t, http.MethodPost, "/api/movements", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, errorCode(t, resp))
		})
	}

	resp := srv.do(t, http.MethodGet, "/api/items/"+item.ID, nil)
	var got dto.ItemResponse
	decode(t, resp, &got)
	assert.Equal(t, int64(2), got.Quantity, "los rechazos no alteran el saldo")
}

func TestRouter_CuerpoInvalido(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	req := httptest.NewRequest(http.MethodPost, "/api/movements", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+srv.token)
	resp, err := srv.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

func TestRouter_RutasProtegidasSinToken(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	srv.token = ""

	for _, path := range []string{"/api/items", "/api/movements", "/api/items/low-stock"} {
		resp := srv.do(t, http.MethodGet, path, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRouter_ListarMovimientos(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	a := srv.createItem(t, "Arandelas", 0, 0)
	b := srv.createItem(t, "Bisagras", 0, 0)

	for _, body := range []dto.RecordMovementRequest{
		{ItemID: a.ID, Kind: "IN", Magnitude: 10},
		{ItemID: b.ID, Kind: "IN", Magnitude: 3},
		{ItemID: a.ID, Kind: "OUT", Magnitude: 4},
	} {
		resp := srv.do(t, http.MethodPost, "/api/movements", body)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := srv.do(t, http.MethodGet, "/api/movements", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all dto.MovementListResponse
	decode(t, resp, &all)
	require.Len(t, all.Items, 3)
	assert.Equal(t, "OUT", all.Items[0].Kind, "el más reciente primero")
	assert.Equal(t, "Arandelas", all.Items[0].ItemName)
	assert.Equal(t, "Ana Bodega", all.Items[0].ActorName)

	resp = srv.do(t, http.MethodGet, "/api/movements?item_id="+a.ID+"&limit=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.MovementListResponse
	decode(t, resp, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, a.ID, page.Items[0].ItemID)
	assert.Equal(t, 1, page.Page.Limit)
	assert.Equal(t, int64(2), page.Page.Total)

	resp = srv.do(t, http.MethodGet, "/api/movements?from=ayer", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestRouter_ItemsCRUD(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	item := srv.createItem(t, "Pernos", 3, 2)

	name := "Pernos M8"
	resp := srv.do(t, http.MethodPut, "/api/items/"+item.ID, dto.UpdateItemRequest{Name: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.ItemResponse
	decode(t, resp, &updated)
	assert.Equal(t, "Pernos M8", updated.Name)
	assert.Equal(t, int64(3), updated.Quantity)

	resp = srv.do(t, http.MethodGet, "/api/items?q=m8", nil)
	var list dto.ItemListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Total)

	resp = srv.do(t, http.MethodGet, "/api/items/no-es-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = srv.do(t, http.MethodDelete, "/api/items/"+item.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_EliminarItemConMovimientos(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	item := srv.createItem(t, "Tuercas", 0, 0)
	resp := srv.do(t, http.MethodPost, "/api/movements", dto.RecordMovementRequest{ItemID: item.ID, Kind: "IN", Magnitude: 1})
	resp.Body.Close()

	resp = srv.do(t, http.MethodDelete, "/api/items/"+item.ID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ITEM_HAS_MOVEMENTS", errorCode(t, resp))
}

func TestRouter_LowStockYKardex(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	item := srv.createItem(t, "Brocas", 10, 5)
	srv.createItem(t, "Lijas", 50, 5)
	resp := srv.do(t, http.MethodPost, "/api/movements", dto.RecordMovementRequest{ItemID: item.ID, Kind: "OUT", Magnitude: 8})
	resp.Body.Close()

	resp = srv.do(t, http.MethodGet, "/api/items/low-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var low struct {
		Total int                   `json:"total"`
		Items []dto.LowStockItemDTO `json:"items"`
	}
	decode(t, resp, &low)
	require.Equal(t, 1, low.Total)
	assert.Equal(t, item.ID, low.Items[0].ItemID)
	assert.Equal(t, int64(3), low.Items[0].Deficit)

	resp = srv.do(t, http.MethodGet, "/api/items/"+item.ID+"/kardex.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "kardex-"+item.ID+".pdf")
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRouter_RegistroDuplicadoYLoginFallido(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	srv.token = ""

	resp := srv.do(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "Otra", Email: "ANA@example.com", Password: "secreto-largo",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, resp))

	resp = srv.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
}

func TestRouter_HealthMetricsYRequestID(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	item := srv.createItem(t, "Cable", 1, 0)
	resp := srv.do(t, http.MethodPost, "/api/movements", dto.RecordMovementRequest{ItemID: item.ID, Kind: "IN", Magnitude: 2})
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := srv.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
	var health map[string]string
	decode(t, resp, &health)
	assert.Equal(t, "ok", health["status"])

	resp = srv.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "stock_ledger_test_movements_recorded_total")
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRouter_Analytics(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)
	item := srv.createItem(t, "Guantes", 10, 8)
	resp := srv.do(t, http.MethodPost, "/api/movements", dto.RecordMovementRequest{ItemID: item.ID, Kind: "OUT", Magnitude: 3})
	resp.Body.Close()

	resp = srv.do(t, http.MethodGet, "/api/analytics/rotation?top_n=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report dto.RotationReportDTO
	decode(t, resp, &report)
	assert.Equal(t, int64(3), report.Totals.UnitsOut)
	require.Len(t, report.Ranking, 1)
	assert.Equal(t, item.ID, report.Ranking[0].ItemID)

	resp = srv.do(t, http.MethodGet, "/api/analytics/rotation?start_date=2026-13-01", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))

	resp = srv.do(t, http.MethodGet, "/api/analytics/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary dto.DashboardSummaryDTO
	decode(t, resp, &summary)
	assert.Equal(t, int64(1), summary.Today.MovementCount)
	assert.Equal(t, 1, summary.BelowMinimum)
}

func TestRouter_UsuarioActual(t *testing.T) {
	srv := newTestServer(t, domaininv.NegativeStockAllow)

	resp := srv.do(t, http.MethodGet, "/api/users/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	decode(t, resp, &me)
	assert.Equal(t, srv.user.ID, me.ID)

	resp = srv.do(t, http.MethodGet, "/api/users/"+srv.user.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = srv.do(t, http.MethodGet, "/api/users/00000000-0000-0000-0000-0000000000aa", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
