package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/SscSPs/def_finance/internal/handlers"
	"github.com/SscSPs/def_finance/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CashRegistryImportHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCashService     *MockCashService
	mockRegistryService *MockRegistryService
	mockImportService   *MockImportService
	userID              string
}

func (suite *CashRegistryImportHandlerTestSuite) SetupSuite() {
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *CashRegistryImportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockCashService = new(MockCashService)
	suite.mockRegistryService = new(MockRegistryService)
	suite.mockImportService = new(MockImportService)
	suite.userID = uuid.NewString()

	lim, err := middleware.NewMemoryLimiter("2-M")
	suite.Require().NoError(err)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterCashRoutes(v1, suite.mockCashService)
	handlers.RegisterRegistryRoutes(v1, suite.mockRegistryService)
	handlers.RegisterImportRoutes(v1, suite.mockImportService, lim)
}

func (suite *CashRegistryImportHandlerTestSuite) TestGetCashAdjustment() {
	suite.mockCashService.On("GetCashAdjustment", mock.Anything).Return(decimal.RequireFromString("1500.75")).Once()

	w := doRequest(suite.router, http.MethodGet, "/api/v1/cash-adjustment", "", suite.userID)

	suite.Equal(http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"value":"1500.75"}`, w.Body.String())
}

func (suite *CashRegistryImportHandlerTestSuite) TestSetCashAdjustment() {
	suite.mockCashService.On("SetCashAdjustment", mock.Anything,
		mock.MatchedBy(func(v decimal.Decimal) bool { return v.Equal(decimal.RequireFromString("150.255")) }),
		suite.userID,
	).Return(decimal.RequireFromString("150.26"), nil).Once()

	w := doRequest(suite.router, http.MethodPut, "/api/v1/cash-adjustment", `{"value":"150.255"}`, suite.userID)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(suite.T(), `{"value":"150.26"}`, w.Body.String())
	suite.mockCashService.AssertExpectations(suite.T())
}

func (suite *CashRegistryImportHandlerTestSuite) TestSetCashAdjustment_MissingValue() {
	w := doRequest(suite.router, http.MethodPut, "/api/v1/cash-adjustment", `{}`, suite.userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCashService.AssertNotCalled(suite.T(), "SetCashAdjustment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashRegistryImportHandlerTestSuite) TestCreateCounterparty() {
	created := &domain.Counterparty{ID: uuid.NewString(), Kind: domain.CounterpartySupplier, Name: "Papelaria Central"}
	suite.mockRegistryService.On("CreateCounterparty", mock.Anything,
		dto.CreateCounterpartyRequest{Kind: domain.CounterpartySupplier, Name: "Papelaria Central"}, suite.userID,
	).Return(created, nil).Once()

	w := doRequest(suite.router, http.MethodPost, "/api/v1/counterparties", `{"kind":"Fornecedor","name":"Papelaria Central"}`, suite.userID)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.mockRegistryService.AssertExpectations(suite.T())
}

func (suite *CashRegistryImportHandlerTestSuite) TestCreateCounterparty_Duplicate() {
	suite.mockRegistryService.On("CreateCounterparty", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("counterparty exists: %w", apperrors.ErrDuplicate)).Once()

	w := doRequest(suite.router, http.MethodPost, "/api/v1/counterparties", `{"kind":"Cliente","name":"Ana"}`, suite.userID)

	suite.Equal(http.StatusConflict, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Already exists"}`, w.Body.String())
}

func (suite *CashRegistryImportHandlerTestSuite) TestCreateCounterparty_InvalidKind() {
	w := doRequest(suite.router, http.MethodPost, "/api/v1/counterparties", `{"kind":"Parceiro","name":"Ana"}`, suite.userID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CashRegistryImportHandlerTestSuite) TestListCounterparties_ByKind() {
	suite.mockRegistryService.On("ListCounterparties", mock.Anything,
		mock.MatchedBy(func(k *domain.CounterpartyKind) bool { return k != nil && *k == domain.CounterpartyClient }),
	).Return([]domain.Counterparty{{ID: "c1", Kind: domain.CounterpartyClient, Name: "Ana"}}, nil).Once()

	w := doRequest(suite.router, http.MethodGet, "/api/v1/counterparties?kind=Cliente", "", suite.userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp []domain.Counterparty
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Ana", resp[0].Name)
}

func (suite *CashRegistryImportHandlerTestSuite) TestCreateUnit_Reserved() {
	suite.mockRegistryService.On("CreateUnit", mock.Anything, dto.CreateUnitRequest{Name: "Todas"}, suite.userID).
		Return(nil, fmt.Errorf("%w: reserved unit name", apperrors.ErrValidation)).Once()

	w := doRequest(suite.router, http.MethodPost, "/api/v1/units", `{"name":"Todas"}`, suite.userID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CashRegistryImportHandlerTestSuite) TestListUnits() {
	suite.mockRegistryService.On("ListUnits", mock.Anything).Return([]domain.Unit{{ID: "u1", Name: "Centro"}}, nil).Once()

	w := doRequest(suite.router, http.MethodGet, "/api/v1/units", "", suite.userID)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Centro")
}

func (suite *CashRegistryImportHandlerTestSuite) TestImportSheets_EmptyBodyUsesDefaultRange() {
	result := &domain.ImportResult{Imported: 3, Skipped: 1, Errors: []string{"Lancamentos!4: invalid amount"}}
	suite.mockImportService.On("ImportFromSheets", mock.Anything, "", suite.userID).Return(result, nil).Once()

	w := doRequest(suite.router, http.MethodPost, "/api/v1/imports/sheets", "", suite.userID)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.ImportResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.Imported)
	suite.Equal(1, resp.Skipped)
	suite.Equal("2", w.Header().Get("X-RateLimit-Limit"))
}

func (suite *CashRegistryImportHandlerTestSuite) TestImportSheets_Unavailable() {
	suite.mockImportService.On("ImportFromSheets", mock.Anything, "Plan1!A2:P", suite.userID).
		Return(nil, fmt.Errorf("%w: spreadsheet import is not configured", apperrors.ErrUnavailable)).Once()

	w := doRequest(suite.router, http.MethodPost, "/api/v1/imports/sheets", `{"range":"Plan1!A2:P"}`, suite.userID)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Contains(w.Body.String(), "not configured")
}

func (suite *CashRegistryImportHandlerTestSuite) TestImportSheets_RateLimited() {
	suite.mockImportService.On("ImportFromSheets", mock.Anything, "", suite.userID).Return(&domain.ImportResult{}, nil).Twice()

	for i := 0; i < 2; i++ {
		w := doRequest(suite.router, http.MethodPost, "/api/v1/imports/sheets", "", suite.userID)
		suite.Equal(http.StatusOK, w.Code)
	}
	w := doRequest(suite.router, http.MethodPost, "/api/v1/imports/sheets", "", suite.userID)

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockImportService.AssertNumberOfCalls(suite.T(), "ImportFromSheets", 2)
}

func TestCashRegistryImportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CashRegistryImportHandlerTestSuite))
}
