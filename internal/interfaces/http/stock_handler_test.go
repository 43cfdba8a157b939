package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Distribuidora-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildStockApp arma la API de stock sobre almacenes en memoria con un agente
// sembrado: DO +100, INV -30 → disponible 70 de PRD-100.
func buildStockApp(t *testing.T) (*fiber.App, *memory.StockTransactionStore) {
	t.Helper()
	lineStore := memory.NewOrderLineStore()
	txStore := memory.NewStockTransactionStore()
	lineStore.AddLines(testAgentID,
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: "PRD-100", Quantity: decimal.NewFromInt(100)},
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: "PRD-100", Quantity: decimal.NewFromInt(30)},
	)
	uc := stock.NewLedgerUseCase(lineStore, txStore, nil, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockUC:   uc,
		JWTSecret: testJWTSecret,
	})
	return app, txStore
}

func doStockRequest(t *testing.T, app *fiber.App, method, target, role string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Authorization", tokenForRole(t, role))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestStockHandler_GetTotals(t *testing.T) {
	app, _ := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodGet,
		"/api/stock/totals?agent_id="+testAgentID+"&item_code=PRD-100", "admin", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "100", body["stock_in"])
	assert.Equal(t, "30", body["stock_out"])
	assert.Equal(t, "70", body["available"])
}

func TestStockHandler_GetTotals_SinItemCode_Retorna400(t *testing.T) {
	app, _ := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodGet,
		"/api/stock/totals?agent_id="+testAgentID, "admin", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Un vendedor atado a un agente no puede consultar otro agente.
func TestStockHandler_VendedorSoloSuAgente(t *testing.T) {
	app, _ := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodGet,
		"/api/stock/totals?agent_id=OTRO-AGENTE&item_code=PRD-100", "vendedor", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Un vendedor sin agent_id en la query consulta el suyo implícitamente.
func TestStockHandler_VendedorAgenteImplicito(t *testing.T) {
	app, _ := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodGet,
		"/api/stock/available?item_code=PRD-100", "vendedor", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "70", body["available"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de validación
// ──────────────────────────────────────────────────────────────────────────────

func TestStockHandler_Validate_Insuficiente_Retorna200ConErrores(t *testing.T) {
	app, _ := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodPost, "/api/stock/validate", "vendedor", fiber.Map{
		"agent_id": testAgentID,
		"lines": []fiber.Map{
			{"order_type": "INV", "item_code": "PRD-100", "quantity": "80"},
		},
	})
	defer resp.Body.Close()

	// Stock insuficiente es resultado de negocio, no error HTTP.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result stock.ValidationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Insufficient stock for item PRD-100. Available: 70, Required: 80", result.Errors[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de escritura + RBAC
// ──────────────────────────────────────────────────────────────────────────────

func TestStockHandler_RecordMovement_Bodeguero(t *testing.T) {
	app, txStore := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodPost, "/api/stock/movements", "bodeguero", fiber.Map{
		"agent_id":  testAgentID,
		"item_code": "PRD-100",
		"quantity":  "5",
		"type":      "in",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, txStore.Len())

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "70", body["stock_before"])
	assert.Equal(t, "75", body["stock_after"])
}

func TestStockHandler_RecordMovement_VendedorBloqueado(t *testing.T) {
	app, txStore := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodPost, "/api/stock/movements", "vendedor", fiber.Map{
		"agent_id":  testAgentID,
		"item_code": "PRD-100",
		"quantity":  "5",
		"type":      "in",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, txStore.Len())
}

func TestStockHandler_RecordOrder_Y_Reverse(t *testing.T) {
	app, txStore := buildStockApp(t)

	resp := doStockRequest(t, app, http.MethodPost, "/api/stock/orders/movements", "admin", fiber.Map{
		"order_id": "ORD-1",
		"order_no": "SO-001",
		"agent_id": testAgentID,
		"lines": []fiber.Map{
			{"order_type": "INV", "item_code": "PRD-100", "quantity": "10"},
		},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 1, txStore.Len())

	// Reversa solo admin: bodeguero bloqueado.
	resp = doStockRequest(t, app, http.MethodPost, "/api/stock/orders/ORD-1/reverse", "bodeguero", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doStockRequest(t, app, http.MethodPost, "/api/stock/orders/ORD-1/reverse", "admin", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, txStore.Len(), "la reversa agrega un asiento compensatorio")
}

func TestStockHandler_Summary(t *testing.T) {
	app, _ := buildStockApp(t)
	resp := doStockRequest(t, app, http.MethodGet,
		"/api/stock/summary?agent_id="+testAgentID, "admin", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "70", items[0]["available"])
}
