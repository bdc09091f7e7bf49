package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
	"spendtrack/internal/services"
)

type mockPayeeService struct {
	createFn  func(in services.PayeeCreate) (*models.Payee, error)
	getByIDFn func(id uint) (*models.Payee, error)
	listFn    func(filter services.PayeeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Payee], error)
	updateFn  func(id uint, in services.PayeeUpdate) (*models.Payee, error)
	deleteFn  func(id uint) error
}

func (m *mockPayeeService) Create(in services.PayeeCreate) (*models.Payee, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return &models.Payee{}, nil
}

func (m *mockPayeeService) GetByID(id uint) (*models.Payee, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Payee{}, nil
}

func (m *mockPayeeService) List(filter services.PayeeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Payee], error) {
	if m.listFn != nil {
		return m.listFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.Payee{}, page.Limit, page.Offset, 0)
	return &resp, nil
}

func (m *mockPayeeService) Update(id uint, in services.PayeeUpdate) (*models.Payee, error) {
	if m.updateFn != nil {
		return m.updateFn(id, in)
	}
	return &models.Payee{}, nil
}

func (m *mockPayeeService) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

var _ services.PayeeServicer = (*mockPayeeService)(nil)

func setupPayeeRouter(handler *PayeeHandler) *gin.Engine {
	r := gin.New()
	r.POST("/payees", handler.CreatePayee)
	r.GET("/payees", handler.GetPayees)
	r.GET("/payees/:id", handler.GetPayee)
	r.PUT("/payees/:id", handler.UpdatePayee)
	r.PATCH("/payees/:id", handler.UpdatePayee)
	r.DELETE("/payees/:id", handler.DeletePayee)
	return r
}

func TestPayeeHandler_CreatePayee(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockPayeeService{
			createFn: func(in services.PayeeCreate) (*models.Payee, error) {
				return &models.Payee{ID: 5, Name: in.Name}, nil
			},
		}
		r := setupPayeeRouter(NewPayeeHandler(svc))

		rec := doRequest(r, "POST", "/payees", `{"payee_name":"Acme Corp"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 422 when name missing", func(t *testing.T) {
		r := setupPayeeRouter(NewPayeeHandler(&mockPayeeService{}))

		rec := doRequest(r, "POST", "/payees", `{"notes":"no name"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 422 for unknown default category", func(t *testing.T) {
		svc := &mockPayeeService{
			createFn: func(services.PayeeCreate) (*models.Payee, error) {
				return nil, apperrors.WithDetails(apperrors.ErrValidation,
					map[string]any{"field": "default_category_id"})
			},
		}
		r := setupPayeeRouter(NewPayeeHandler(svc))

		rec := doRequest(r, "POST", "/payees", `{"payee_name":"Acme Corp","default_category_id":999}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})
}

func TestPayeeHandler_GetPayee(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockPayeeService{
			getByIDFn: func(uint) (*models.Payee, error) {
				return nil, apperrors.ErrPayeeNotFound
			},
		}
		r := setupPayeeRouter(NewPayeeHandler(svc))

		rec := doRequest(r, "GET", "/payees/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_FOUND")
	})

	t.Run("returns 400 for non-numeric id", func(t *testing.T) {
		r := setupPayeeRouter(NewPayeeHandler(&mockPayeeService{}))

		rec := doRequest(r, "GET", "/payees/acme", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPayeeHandler_UpdatePayee(t *testing.T) {
	t.Run("patch sets only provided fields", func(t *testing.T) {
		var got services.PayeeUpdate
		svc := &mockPayeeService{
			updateFn: func(_ uint, in services.PayeeUpdate) (*models.Payee, error) {
				got = in
				return &models.Payee{ID: 1}, nil
			},
		}
		r := setupPayeeRouter(NewPayeeHandler(svc))

		rec := doRequest(r, "PATCH", "/payees/1", `{"is_active":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.IsActive == nil || *got.IsActive {
			t.Errorf("expected is_active false, got %v", got.IsActive)
		}
		if got.Name != nil {
			t.Error("expected name to stay nil")
		}
	})
}

func TestPayeeHandler_DeletePayee(t *testing.T) {
	t.Run("returns 409 when referenced", func(t *testing.T) {
		svc := &mockPayeeService{
			deleteFn: func(uint) error {
				return apperrors.WithMessage(apperrors.ErrDeleteConflict,
					"Cannot delete payee that is used by transactions")
			},
		}
		r := setupPayeeRouter(NewPayeeHandler(svc))

		rec := doRequest(r, "DELETE", "/payees/1", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DELETE_CONFLICT")
	})
}
