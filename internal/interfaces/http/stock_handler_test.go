package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/application/stock"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
	apphttp "github.com/jhoicas/repuestos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar un StockUseCase real detrás del handler.
// El runner trabaja directo sobre los mapas: los tests de rollback viven en el
// paquete stock; aquí solo interesa el mapeo de errores a HTTP.
// ──────────────────────────────────────────────────────────────────────────────

type handlerStore struct {
	parts     map[string]*entity.SparePart
	stockOuts map[string]*entity.StockOut
	stockIns  map[string]*entity.StockIn
}

type handlerTxRunner struct{ s *handlerStore }

func (r *handlerTxRunner) Run(_ context.Context, fn func(
	partRepo repository.SparePartRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
) error) error {
	return fn(&handlerPartRepo{r.s}, &handlerStockInRepo{r.s}, &handlerStockOutRepo{r.s})
}

type handlerPartRepo struct{ s *handlerStore }

func (r *handlerPartRepo) Create(p *entity.SparePart) error { r.s.parts[p.ID] = p; return nil }
func (r *handlerPartRepo) GetByID(id string) (*entity.SparePart, error) {
	return r.s.parts[id], nil
}
func (r *handlerPartRepo) GetByNameAndCategory(string, string) (*entity.SparePart, error) {
	return nil, nil
}
func (r *handlerPartRepo) GetForUpdate(id string) (*entity.SparePart, error) {
	return r.s.parts[id], nil
}
func (r *handlerPartRepo) UpdateQuantity(id string, quantity int) error {
	p, ok := r.s.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}
func (r *handlerPartRepo) ListWithCategory() ([]repository.SparePartRow, error) { return nil, nil }

type handlerStockInRepo struct{ s *handlerStore }

func (r *handlerStockInRepo) Create(e *entity.StockIn) error { r.s.stockIns[e.ID] = e; return nil }
func (r *handlerStockInRepo) ListWithPart() ([]repository.StockInRow, error) {
	rows := make([]repository.StockInRow, 0, len(r.s.stockIns))
	for _, e := range r.s.stockIns {
		rows = append(rows, repository.StockInRow{Event: *e, PartName: "repuesto"})
	}
	return rows, nil
}

type handlerStockOutRepo struct{ s *handlerStore }

func (r *handlerStockOutRepo) Create(e *entity.StockOut) error { r.s.stockOuts[e.ID] = e; return nil }
func (r *handlerStockOutRepo) GetForUpdate(id string) (*entity.StockOut, error) {
	return r.s.stockOuts[id], nil
}
func (r *handlerStockOutRepo) Update(e *entity.StockOut) error {
	r.s.stockOuts[e.ID] = e
	return nil
}
func (r *handlerStockOutRepo) Delete(id string) error {
	delete(r.s.stockOuts, id)
	return nil
}
func (r *handlerStockOutRepo) ListWithPart() ([]repository.StockOutRow, error) {
	rows := make([]repository.StockOutRow, 0, len(r.s.stockOuts))
	for _, e := range r.s.stockOuts {
		rows = append(rows, repository.StockOutRow{Event: *e, PartName: "repuesto", CategoryName: "categoría"})
	}
	return rows, nil
}

func buildStockApp(store *handlerStore) *fiber.App {
	runner := &handlerTxRunner{s: store}
	uc := stock.NewStockUseCase(runner, &handlerStockInRepo{store}, &handlerStockOutRepo{store})
	handler := apphttp.NewStockHandler(uc)

	app := fiber.New()
	app.Post("/stockin", handler.StockIn)
	app.Get("/stockin", handler.ListStockIn)
	app.Post("/stockout", handler.StockOut)
	app.Get("/stockout", handler.ListStockOut)
	app.Put("/stockout/:id", handler.UpdateStockOut)
	app.Delete("/stockout/:id", handler.DeleteStockOut)
	return app
}

func newHandlerStore() *handlerStore {
	return &handlerStore{
		parts:     map[string]*entity.SparePart{},
		stockOuts: map[string]*entity.StockOut{},
		stockIns:  map[string]*entity.StockIn{},
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStockIn_Creado(t *testing.T) {
	store := newHandlerStore()
	store.parts["p1"] = &entity.SparePart{ID: "p1", Quantity: 5}
	app := buildStockApp(store)

	resp := doJSON(t, app, http.MethodPost, "/stockin",
		`{"spare_part_id":"p1","quantity":3,"date":"2025-03-15"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 8, store.parts["p1"].Quantity)
}

func TestStockIn_FechaInvalida_Retorna400(t *testing.T) {
	app := buildStockApp(newHandlerStore())

	resp := doJSON(t, app, http.MethodPost, "/stockin",
		`{"spare_part_id":"p1","quantity":3,"date":"15/03/2025"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "VALIDATION")
}

func TestStockIn_RepuestoInexistente_Retorna404(t *testing.T) {
	app := buildStockApp(newHandlerStore())

	resp := doJSON(t, app, http.MethodPost, "/stockin",
		`{"spare_part_id":"no-existe","quantity":3,"date":"2025-03-15"}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "NOT_FOUND")
}

func TestStockOut_StockInsuficiente_Retorna400(t *testing.T) {
	store := newHandlerStore()
	store.parts["p1"] = &entity.SparePart{ID: "p1", Quantity: 2}
	app := buildStockApp(store)

	resp := doJSON(t, app, http.MethodPost, "/stockout",
		`{"spare_part_id":"p1","quantity":5,"unit_price":"10","date":"2025-03-15"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INSUFFICIENT_STOCK")
	assert.Equal(t, 2, store.parts["p1"].Quantity, "el stock no debe cambiar")
}

func TestStockOut_CantidadInvalida_Retorna400(t *testing.T) {
	store := newHandlerStore()
	store.parts["p1"] = &entity.SparePart{ID: "p1", Quantity: 10}
	app := buildStockApp(store)

	resp := doJSON(t, app, http.MethodPost, "/stockout",
		`{"spare_part_id":"p1","quantity":0,"unit_price":"10","date":"2025-03-15"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "VALIDATION")
}

func TestUpdateStockOut_Inexistente_Retorna404(t *testing.T) {
	store := newHandlerStore()
	store.parts["p1"] = &entity.SparePart{ID: "p1", Quantity: 10}
	app := buildStockApp(store)

	resp := doJSON(t, app, http.MethodPut, "/stockout/no-existe",
		`{"spare_part_id":"p1","quantity":1,"unit_price":"10","date":"2025-03-15"}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteStockOut_RestauraYRetorna200(t *testing.T) {
	store := newHandlerStore()
	store.parts["p1"] = &entity.SparePart{ID: "p1", Quantity: 6}
	store.stockOuts["s1"] = &entity.StockOut{ID: "s1", SparePartID: "p1", Quantity: 4,
		UnitPrice: decimal.NewFromInt(10), TotalPrice: decimal.NewFromInt(40)}
	app := buildStockApp(store)

	resp := doJSON(t, app, http.MethodDelete, "/stockout/s1", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, store.parts["p1"].Quantity)
	assert.Empty(t, store.stockOuts)
}

func TestListStockOut_IncluyeNombres(t *testing.T) {
	store := newHandlerStore()
	store.stockOuts["s1"] = &entity.StockOut{ID: "s1", SparePartID: "p1", Quantity: 2,
		UnitPrice: decimal.NewFromInt(10), TotalPrice: decimal.NewFromInt(20)}
	app := buildStockApp(store)

	resp := doJSON(t, app, http.MethodGet, "/stockout", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	resp.Body.Close()

	require.Len(t, rows, 1)
	assert.Equal(t, "repuesto", rows[0]["part_name"])
	assert.Equal(t, "categoría", rows[0]["category_name"])
}

func TestStockIn_BodyMalformado_Retorna400(t *testing.T) {
	app := buildStockApp(newHandlerStore())

	resp := doJSON(t, app, http.MethodPost, "/stockin", `{esto no es json`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.True(t, strings.Contains(bodyString(t, resp), "INVALID_BODY"))
}
