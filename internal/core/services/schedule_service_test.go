package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/budget_calendar_app/internal/apperrors"
	"github.com/SscSPs/budget_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/budget_calendar_app/internal/core/services"
	"github.com/SscSPs/budget_calendar_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	scheduleRepo *MockScheduleRepository
	currencyRepo *MockCurrencyRepository
	service      portssvc.ScheduleSvcFacade
	ctx          context.Context
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.scheduleRepo = new(MockScheduleRepository)
	suite.currencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewScheduleService(suite.scheduleRepo, suite.currencyRepo)
	suite.ctx = context.Background()
}

func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.scheduleRepo.AssertExpectations(suite.T())
	suite.currencyRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) storedExpense() *domain.Schedule {
	anchor, _ := domain.ParseDate("2025-01-31")
	s, err := domain.NewExpenseSchedule("sched-1", "Rent", anchor, domain.MustMoney("USD", "1200"), domain.Monthly, nil,
		domain.Stamp{UserID: "owner", At: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	suite.Require().NoError(err)
	return s
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_ExpenseIsStoredNegative() {
	req := dto.CreateScheduleRequest{
		Type:         "EXPENSE",
		Name:         "Rent",
		Anchor:       "2025-01-01",
		Pattern:      "MONTHLY",
		Amount:       decPtr(decimal.NewFromInt(1200)),
		CurrencyCode: "USD",
	}
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(usdCurrency(), nil).Once()
	suite.scheduleRepo.On("SaveSchedule", suite.ctx, mock.MatchedBy(func(s domain.Schedule) bool {
		return s.ScheduleID != "" &&
			s.Type == domain.Expense &&
			s.Amount.Equal(domain.MustMoney("USD", "-1200")) &&
			s.CreatedBy == "user-1"
	})).Return(nil).Once()

	schedule, err := suite.service.CreateSchedule(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Rent", schedule.Name)
	suite.Equal(domain.Monthly, schedule.Pattern)
	suite.True(schedule.Amount.IsNegative())
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_IncomeWithCustomInterval() {
	req := dto.CreateScheduleRequest{
		Type:               "INCOME",
		Anchor:             "2025-01-01",
		Pattern:            "CUSTOM",
		CustomIntervalDays: intPtr(10),
		Amount:             decPtr(decimal.NewFromInt(-50)),
		CurrencyCode:       "USD",
	}
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(usdCurrency(), nil).Once()
	suite.scheduleRepo.On("SaveSchedule", suite.ctx, mock.AnythingOfType("domain.Schedule")).Return(nil).Once()

	schedule, err := suite.service.CreateSchedule(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(schedule.Amount.Equal(domain.MustMoney("USD", "50")))
	suite.Require().NotNil(schedule.CustomIntervalDays)
	suite.Equal(10, *schedule.CustomIntervalDays)
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_UnsupportedCurrency() {
	req := dto.CreateScheduleRequest{Type: "INCOME", Anchor: "2025-01-01", Pattern: "WEEKLY", Amount: decPtr(decimal.NewFromInt(5)), CurrencyCode: "XYZ"}
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "XYZ").Return(nil, apperrors.ErrNotFound).Once()

	schedule, err := suite.service.CreateSchedule(suite.ctx, req, "user-1")

	suite.Nil(schedule)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.scheduleRepo.AssertNotCalled(suite.T(), "SaveSchedule", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_DomainRejections() {
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(usdCurrency(), nil)

	cases := map[string]dto.CreateScheduleRequest{
		"bad anchor":         {Type: "INCOME", Anchor: "2025-02-30", Pattern: "WEEKLY", CurrencyCode: "USD"},
		"unnamed expense":    {Type: "EXPENSE", Anchor: "2025-01-01", Pattern: "WEEKLY", CurrencyCode: "USD"},
		"custom no interval": {Type: "INCOME", Anchor: "2025-01-01", Pattern: "CUSTOM", CurrencyCode: "USD"},
	}
	for name, req := range cases {
		schedule, err := suite.service.CreateSchedule(suite.ctx, req, "user-1")
		suite.Nil(schedule, name)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.scheduleRepo.AssertNotCalled(suite.T(), "SaveSchedule", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_SaveError() {
	req := dto.CreateScheduleRequest{Type: "INCOME", Anchor: "2025-01-01", Pattern: "ANNUAL", Amount: decPtr(decimal.NewFromInt(5)), CurrencyCode: "USD"}
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(usdCurrency(), nil).Once()
	suite.scheduleRepo.On("SaveSchedule", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CreateSchedule(suite.ctx, req, "user-1")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_AmountKeepsExpenseSign() {
	suite.scheduleRepo.On("FindScheduleByID", suite.ctx, "sched-1").Return(suite.storedExpense(), nil).Once()
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(usdCurrency(), nil).Once()
	suite.scheduleRepo.On("UpdateSchedule", suite.ctx, mock.MatchedBy(func(s domain.Schedule) bool {
		return s.Amount.Equal(domain.MustMoney("USD", "-1350")) && s.LastUpdatedBy == "editor"
	})).Return(nil).Once()

	amount := decimal.NewFromInt(1350)
	schedule, err := suite.service.UpdateSchedule(suite.ctx, "sched-1", dto.UpdateScheduleRequest{Amount: &amount}, "editor")

	suite.Require().NoError(err)
	suite.Equal("owner", schedule.CreatedBy)
	suite.Equal("Rent", schedule.Name)
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_RecurrenceAndAnchor() {
	suite.scheduleRepo.On("FindScheduleByID", suite.ctx, "sched-1").Return(suite.storedExpense(), nil).Once()
	suite.scheduleRepo.On("UpdateSchedule", suite.ctx, mock.AnythingOfType("domain.Schedule")).Return(nil).Once()

	req := dto.UpdateScheduleRequest{
		Anchor:             strPtr("2025-02-03"),
		Pattern:            strPtr("CUSTOM"),
		CustomIntervalDays: intPtr(21),
	}
	schedule, err := suite.service.UpdateSchedule(suite.ctx, "sched-1", req, "editor")

	suite.Require().NoError(err)
	suite.Equal("2025-02-03", schedule.Anchor.String())
	suite.Equal(domain.Custom, schedule.Pattern)
	suite.Equal(21, *schedule.CustomIntervalDays)
	suite.currencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_InvalidRecurrence() {
	suite.scheduleRepo.On("FindScheduleByID", suite.ctx, "sched-1").Return(suite.storedExpense(), nil).Once()

	_, err := suite.service.UpdateSchedule(suite.ctx, "sched-1", dto.UpdateScheduleRequest{Pattern: strPtr("CUSTOM")}, "editor")

	suite.ErrorIs(err, apperrors.ErrInvalidRecurrence)
	suite.scheduleRepo.AssertNotCalled(suite.T(), "UpdateSchedule", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_NotFound() {
	suite.scheduleRepo.On("FindScheduleByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateSchedule(suite.ctx, "missing", dto.UpdateScheduleRequest{Name: strPtr("x")}, "editor")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ScheduleServiceTestSuite) TestGetScheduleOccurrences() {
	suite.scheduleRepo.On("FindScheduleByID", suite.ctx, "sched-1").Return(suite.storedExpense(), nil).Once()

	start, _ := domain.ParseDate("2025-01-01")
	end, _ := domain.ParseDate("2025-04-30")
	dates, err := suite.service.GetScheduleOccurrences(suite.ctx, "sched-1", start, end)

	suite.Require().NoError(err)
	got := make([]string, len(dates))
	for i, d := range dates {
		got[i] = d.String()
	}
	suite.Equal([]string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"}, got)
}

func (suite *ScheduleServiceTestSuite) TestGetScheduleOccurrences_WindowTooLong() {
	start, _ := domain.ParseDate("2020-01-01")
	end, _ := domain.ParseDate("9999-12-31")

	dates, err := suite.service.GetScheduleOccurrences(suite.ctx, "sched-1", start, end)

	suite.Nil(dates)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.scheduleRepo.AssertNotCalled(suite.T(), "FindScheduleByID", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestListSchedules() {
	next := strPtr("token-2")
	suite.scheduleRepo.On("ListSchedules", suite.ctx, 2, (*string)(nil)).
		Return([]domain.Schedule{*suite.storedExpense()}, next, nil).Once()

	resp, err := suite.service.ListSchedules(suite.ctx, dto.ListSchedulesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Schedules, 1)
	suite.Equal("sched-1", resp.Schedules[0].ScheduleID)
	suite.True(resp.Schedules[0].Amount.Equal(decimal.NewFromInt(-1200)))
	suite.Equal(next, resp.NextToken)
}

func (suite *ScheduleServiceTestSuite) TestDeleteSchedule() {
	suite.scheduleRepo.On("DeleteSchedule", suite.ctx, "sched-1").Return(nil).Once()
	suite.scheduleRepo.On("DeleteSchedule", suite.ctx, "gone").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteSchedule(suite.ctx, "sched-1", "user-1"))
	suite.ErrorIs(suite.service.DeleteSchedule(suite.ctx, "gone", "user-1"), apperrors.ErrNotFound)
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
