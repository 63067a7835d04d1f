package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finstatements/internal/apperrors"
	"github.com/SscSPs/finstatements/internal/core/domain"
	"github.com/SscSPs/finstatements/internal/core/ledger"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/core/services"
	"github.com/SscSPs/finstatements/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_Success() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:        "2025-03-01",
		Description: "  Owner contribution ",
		Details: []dto.CreateJournalLineRequest{
			{AccountID: 13, Debit: amount("1000")},
			{AccountID: 22, Credit: amount("1000")},
			{AccountID: 14},
		},
	}
	suite.mockAccountRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil).Once()
	suite.mockJournalRepo.On("AppendJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return len(e.Details) == 2 &&
			e.Description == "Owner contribution" &&
			e.Details[0].AccountCode == "111111" &&
			e.TotalAmount.Equal(amount("1000"))
	})).Return(int64(7), nil).Once()

	entry, err := suite.service.PostJournalEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), entry.ID)
	suite.Len(entry.Details, 2, "zero line dropped")
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:        "2025-03-01",
		Description: "Typo",
		Details: []dto.CreateJournalLineRequest{
			{AccountID: 13, Debit: amount("100")},
			{AccountID: 22, Credit: amount("90")},
		},
	}

	entry, err := suite.service.PostJournalEntry(ctx, req)

	suite.Nil(entry)
	suite.ErrorIs(err, ledger.ErrUnbalanced)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "AppendJournalEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_UnknownAccount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:        "2025-03-01",
		Description: "Ghost",
		Details: []dto.CreateJournalLineRequest{
			{AccountID: 13, Debit: amount("5")},
			{AccountID: 404, Credit: amount("5")},
		},
	}
	suite.mockAccountRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil).Once()

	_, err := suite.service.PostJournalEntry(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "AppendJournalEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_AppendError() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		Date:        "2025-03-01",
		Description: "Cash sale",
		Details: []dto.CreateJournalLineRequest{
			{AccountID: 13, Debit: amount("5")},
			{AccountID: 25, Credit: amount("5")},
		},
	}
	suite.mockAccountRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil).Once()
	suite.mockJournalRepo.On("AppendJournalEntry", ctx, mock.Anything).Return(int64(0), assert.AnError).Once()

	_, err := suite.service.PostJournalEntry(ctx, req)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *JournalServiceTestSuite) TestListJournalEntries_NewestFirstWithNames() {
	ctx := context.Background()
	stored := []domain.JournalEntry{
		{ID: 1, Date: "2025-01-01", Description: "first", Details: []domain.JournalLine{
			{AccountID: 13, AccountCode: "111111", Debit: amount("10")},
			{AccountID: 22, AccountCode: "31111", Credit: amount("10")},
		}},
		{ID: 2, Date: "2025-01-02", Description: "second", Details: []domain.JournalLine{
			{AccountID: 99, AccountCode: "999", Debit: amount("3")},
			{AccountID: 13, AccountCode: "111111", Credit: amount("3")},
		}},
	}
	suite.mockJournalRepo.On("FetchAllJournalEntries", ctx).Return(stored, nil).Once()
	suite.mockAccountRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil).Once()

	entries, err := suite.service.ListJournalEntries(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(int64(2), entries[0].ID)
	suite.Equal(services.DeletedAccountName, entries[0].Details[0].AccountName)
	suite.Equal("999", entries[0].Details[0].AccountCode)
	suite.Equal("Cash box (SAR)", entries[1].Details[0].AccountName)
	suite.Empty(stored[0].Details[0].AccountName, "stored entries are not modified")
}

func (suite *JournalServiceTestSuite) TestImportJournalEntries() {
	ctx := context.Background()
	candidates := []domain.JournalEntry{
		{ID: 1, Date: "2025-02-01", Description: "Sale", Details: []domain.JournalLine{
			{AccountCode: "111111", Debit: amount("200")},
			{AccountCode: "41", Credit: amount("200")},
			{AccountCode: "77777", Credit: amount("1")},
		}},
		{ID: 2, Date: "2025-02-02", Description: "Half", Details: []domain.JournalLine{
			{AccountCode: "111111", Debit: amount("50")},
			{AccountCode: "41", Credit: amount("40")},
		}},
		{ID: 3, Date: "not-a-date", Description: "Bad", Details: []domain.JournalLine{
			{AccountCode: "111111", Debit: amount("5")},
			{AccountCode: "41", Credit: amount("5")},
		}},
	}
	suite.mockAccountRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil).Once()
	suite.mockJournalRepo.On("AppendJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.ID == 0 && e.Details[0].AccountID == 13 && e.Details[1].AccountID == 25
	})).Return(int64(11), nil).Once()

	res, err := suite.service.ImportJournalEntries(ctx, candidates)

	suite.Require().NoError(err)
	suite.Equal(1, res.Imported)
	suite.Require().Len(res.SkippedLines, 1)
	suite.Equal(dto.SkippedLine{EntryNumber: 1, AccountCode: "77777"}, res.SkippedLines[0])
	suite.Require().Len(res.Rejected, 2)
	suite.Equal(int64(2), res.Rejected[0].EntryNumber)
	suite.Contains(res.Rejected[0].Reason, "do not balance")
	suite.Equal(int64(3), res.Rejected[1].EntryNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
