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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: " 115 ", Name: "Prepaid rent", ParentID: 6}

	suite.mockRepo.On("FindAccountByID", ctx, int64(6)).Return(&domain.Account{ID: 6, Code: "11"}, nil).Once()
	suite.mockRepo.On("AddAccount", ctx, domain.Account{Code: "115", Name: "Prepaid rent", ParentID: 6}).Return(int64(36), nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(36), created.ID)
	suite.Equal("115", created.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_TopLevelSkipsParentLookup() {
	ctx := context.Background()
	suite.mockRepo.On("AddAccount", ctx, mock.AnythingOfType("domain.Account")).Return(int64(6), nil).Once()

	created, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "6", Name: "Memo"})

	suite.Require().NoError(err)
	suite.True(created.IsTopLevel())
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownParent() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "991", Name: "x", ParentID: 99})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	suite.mockRepo.On("AddAccount", ctx, mock.AnythingOfType("domain.Account")).Return(int64(0), apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "1", Name: "Assets again"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestListAccounts_LeafOnly() {
	ctx := context.Background()
	suite.mockRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil)

	all, err := suite.service.ListAccounts(ctx, false)
	suite.Require().NoError(err)
	suite.Len(all, 35)

	leaves, err := suite.service.ListAccounts(ctx, true)
	suite.Require().NoError(err)
	suite.NotEmpty(leaves)
	suite.Less(len(leaves), len(all))
	for _, acc := range leaves {
		suite.NotEqual("1", acc.Code)
	}
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FetchAllAccounts", ctx).Return(nil, assert.AnError).Once()

	accounts, err := suite.service.ListAccounts(ctx, false)

	suite.Nil(accounts)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestGetAncestors() {
	ctx := context.Background()
	suite.mockRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil)

	ancestors, err := suite.service.GetAncestors(ctx, 13)
	suite.Require().NoError(err)
	codes := make([]string, len(ancestors))
	for i, a := range ancestors {
		codes[i] = a.Code
	}
	suite.Equal([]string{"11111", "111", "11", "1"}, codes)

	_, err = suite.service.GetAncestors(ctx, 404)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountTree() {
	ctx := context.Background()
	suite.mockRepo.On("FetchAllAccounts", ctx).Return(ledger.DefaultChart(), nil).Once()

	nodes, err := suite.service.GetAccountTree(ctx)

	suite.Require().NoError(err)
	suite.Len(nodes, 5)
	suite.Equal("1", nodes[0].Account.Code)
	suite.False(nodes[0].Leaf)
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart() {
	ctx := context.Background()
	suite.mockRepo.On("SeedAccounts", ctx, ledger.DefaultChart()).Return(35, nil).Once()

	n, err := suite.service.SeedDefaultChart(ctx)

	suite.Require().NoError(err)
	suite.Equal(35, n)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestImportAccounts_RejectsCycle() {
	ctx := context.Background()
	cyclic := []domain.Account{
		{ID: 1, Code: "1", ParentID: 2},
		{ID: 2, Code: "2", ParentID: 1},
	}

	_, err := suite.service.ImportAccounts(ctx, cyclic)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SeedAccounts", mock.Anything, mock.Anything)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
