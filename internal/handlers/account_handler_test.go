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

// --- mock account service ---

type mockAccountService struct {
	createFn  func(in services.AccountCreate) (*models.Account, error)
	getByIDFn func(id uint) (*models.Account, error)
	listFn    func(filter services.AccountFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	updateFn  func(id uint, in services.AccountUpdate) (*models.Account, error)
	deleteFn  func(id uint) error
}

func (m *mockAccountService) Create(in services.AccountCreate) (*models.Account, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) GetByID(id uint) (*models.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) List(filter services.AccountFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	if m.listFn != nil {
		return m.listFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.Account{}, page.Limit, page.Offset, 0)
	return &resp, nil
}

func (m *mockAccountService) Update(id uint, in services.AccountUpdate) (*models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(id, in)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

var _ services.AccountServicer = (*mockAccountService)(nil)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	r.POST("/accounts", handler.CreateAccount)
	r.GET("/accounts", handler.GetAccounts)
	r.GET("/accounts/:id", handler.GetAccount)
	r.PUT("/accounts/:id", handler.UpdateAccount)
	r.PATCH("/accounts/:id", handler.UpdateAccount)
	r.DELETE("/accounts/:id", handler.DeleteAccount)
	return r
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockAccountService{
			createFn: func(in services.AccountCreate) (*models.Account, error) {
				return &models.Account{ID: 1, Name: in.Name, CurrencyCode: "USD"}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "POST", "/accounts", `{"account_type_id":1,"account_name":"Checking"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["account_name"] != "Checking" {
			t.Errorf("expected account_name Checking, got %v", result["account_name"])
		}
	})

	t.Run("returns 422 on missing name", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "POST", "/accounts", `{"account_type_id":1}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 422 on invalid currency code", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "POST", "/accounts", `{"account_type_id":1,"account_name":"X","currency_code":"dollars"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("returns 422 when service rejects foreign key", func(t *testing.T) {
		svc := &mockAccountService{
			createFn: func(services.AccountCreate) (*models.Account, error) {
				return nil, apperrors.ErrForeignKey
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "POST", "/accounts", `{"account_type_id":99,"account_name":"X"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})
}

func TestAccountHandler_GetAccounts(t *testing.T) {
	t.Run("returns 200 with pagination envelope", func(t *testing.T) {
		svc := &mockAccountService{
			listFn: func(_ services.AccountFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
				resp := pagination.NewPageResponse([]models.Account{{ID: 1, Name: "A"}}, page.Limit, page.Offset, 1)
				return &resp, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "GET", "/accounts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if _, ok := result["data"]; !ok {
			t.Error("expected data key in response")
		}
		meta, ok := result["pagination"].(map[string]interface{})
		if !ok {
			t.Fatal("expected pagination object in response")
		}
		if meta["limit"].(float64) != 50 {
			t.Errorf("expected default limit 50, got %v", meta["limit"])
		}
	})

	t.Run("returns 400 when limit over cap", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "GET", "/accounts?limit=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BAD_REQUEST")
	})

	t.Run("returns 400 on non-numeric limit", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "GET", "/accounts?limit=lots", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetAccount(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockAccountService{
			getByIDFn: func(uint) (*models.Account, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "GET", "/accounts/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_FOUND")
	})

	t.Run("returns 400 on non-numeric id", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "GET", "/accounts/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Run("patch routes to same partial update", func(t *testing.T) {
		var got services.AccountUpdate
		svc := &mockAccountService{
			updateFn: func(_ uint, in services.AccountUpdate) (*models.Account, error) {
				got = in
				return &models.Account{ID: 1, Name: "Renamed"}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "PATCH", "/accounts/1", `{"account_name":"Renamed"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Name == nil || *got.Name != "Renamed" {
			t.Errorf("expected name pointer set, got %v", got.Name)
		}
		if got.Notes != nil {
			t.Error("expected absent fields to stay nil")
		}
	})
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "DELETE", "/accounts/1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on delete conflict", func(t *testing.T) {
		svc := &mockAccountService{
			deleteFn: func(uint) error { return apperrors.ErrDeleteConflict },
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "DELETE", "/accounts/1", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DELETE_CONFLICT")
	})
}
