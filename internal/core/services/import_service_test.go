package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/def_finance/internal/apperrors"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testSheetRange = "Lancamentos!A2:P"

type ImportServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockEntryRepository
	mockSource *MockSheetSource
	cache      *countingInvalidator
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.mockSource = new(MockSheetSource)
	suite.cache = &countingInvalidator{}
}

func (suite *ImportServiceTestSuite) newService() portssvc.ImportSvc {
	return services.NewImportService(suite.mockSource, suite.mockRepo, suite.cache, testSheetRange,
		services.WithClock(func() time.Time { return testNow }))
}

func (suite *ImportServiceTestSuite) TestImport_NotConfigured() {
	svc := services.NewImportService(nil, suite.mockRepo, suite.cache, testSheetRange)

	result, err := svc.ImportFromSheets(context.Background(), "", "user")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
}

func (suite *ImportServiceTestSuite) TestImport_UpsertsParsedRows() {
	ctx := context.Background()
	rows := [][]string{
		{"10/03/2024", "Saida", "Centro", "Fornecedor A", "Aluguel", "R$ 1.500,00"},
		{},
		{"11/03/2024", "Transferencia", "", "", "", "10"},
		{"12/03/2024", "Entrada", "Norte", "Cliente B", "", "300", "Pago", "12/03/2024"},
	}
	suite.mockSource.On("ReadRange", ctx, testSheetRange).Return(rows, nil).Once()
	suite.mockRepo.On("UpsertEntriesByExternalRef", ctx, mock.MatchedBy(func(entries []domain.Entry) bool {
		return len(entries) == 2 &&
			entries[0].ExternalRef == "Lancamentos!2" &&
			entries[0].Amount.Equal(dec("1500")) &&
			entries[1].ExternalRef == "Lancamentos!5" &&
			entries[1].Status == domain.StatusPaid &&
			entries[1].CreatedBy == "importer"
	})).Return(2, nil).Once()

	result, err := suite.newService().ImportFromSheets(ctx, "", "importer")

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.Equal(2, result.Skipped)
	suite.Require().Len(result.Errors, 1)
	suite.Contains(result.Errors[0], "Lancamentos!4")
	suite.Equal(int32(1), suite.cache.calls.Load())
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImport_CustomRangeWithNothingValid() {
	ctx := context.Background()
	suite.mockSource.On("ReadRange", ctx, "Outra!A10:P").Return([][]string{{"", ""}}, nil).Once()

	result, err := suite.newService().ImportFromSheets(ctx, " Outra!A10:P ", "importer")

	suite.Require().NoError(err)
	suite.Equal(0, result.Imported)
	suite.Equal(1, result.Skipped)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertEntriesByExternalRef", mock.Anything, mock.Anything)
	suite.Equal(int32(0), suite.cache.calls.Load())
}

func (suite *ImportServiceTestSuite) TestImport_ReadError() {
	ctx := context.Background()
	suite.mockSource.On("ReadRange", ctx, testSheetRange).Return(nil, assert.AnError).Once()

	result, err := suite.newService().ImportFromSheets(ctx, "", "importer")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ImportServiceTestSuite) TestImport_UpsertError() {
	ctx := context.Background()
	rows := [][]string{{"10/03/2024", "Saida", "", "", "", "5"}}
	suite.mockSource.On("ReadRange", ctx, testSheetRange).Return(rows, nil).Once()
	suite.mockRepo.On("UpsertEntriesByExternalRef", ctx, mock.Anything).Return(0, assert.AnError).Once()

	result, err := suite.newService().ImportFromSheets(ctx, "", "importer")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(int32(0), suite.cache.calls.Load())
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
