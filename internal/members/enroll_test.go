package members

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsync/internal/gateway"
	"fitsync/pkg/models"
)

type fakeMemberGateway struct {
	gyms      []models.Gym
	createErr error
}

func (f *fakeMemberGateway) CreateMember(ctx context.Context, input models.MemberInput) (models.Member, error) {
	if f.createErr != nil {
		return models.Member{}, f.createErr
	}
	return models.Member{
		ID:       "m1",
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Plan:     input.Plan,
		Status:   input.Status,
		Gym:      models.Ref{ID: input.GymID},
		JoinDate: input.JoinDate,
	}, nil
}

func (f *fakeMemberGateway) ListGyms(ctx context.Context) ([]models.Gym, error) {
	return f.gyms, nil
}

type fakeBillCreator struct {
	bills     []models.BillInput
	createErr error
}

func (f *fakeBillCreator) Create(ctx context.Context, input models.BillInput) (models.Bill, error) {
	if f.createErr != nil {
		return models.Bill{}, f.createErr
	}
	f.bills = append(f.bills, input)
	return models.Bill{
		ID:         "b1",
		MemberName: input.MemberName,
		GymName:    input.GymName,
		Plan:       input.Plan,
		Amount:     input.Amount,
		DueDate:    input.DueDate,
		Status:     models.BillStatusPending,
	}, nil
}

func premiumInput(joined time.Time) models.MemberInput {
	return models.MemberInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Plan:     models.PlanPremium,
		Status:   models.MemberStatusActive,
		GymID:    "g1",
		JoinDate: models.NewDate(joined),
	}
}

func TestEnrollCreatesFirstBill(t *testing.T) {
	joined := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	gw := &fakeMemberGateway{gyms: []models.Gym{{ID: "g1", GymName: "FitSync Central"}}}
	bills := &fakeBillCreator{}
	service := NewService(gw, bills)

	result, err := service.Enroll(context.Background(), premiumInput(joined))
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", result.Member.Name)
	require.NotNil(t, result.Bill)
	assert.Nil(t, result.BillErr)

	// Premium membership bills at the Premium tier, due one month out.
	assert.Equal(t, int64(2500), result.Bill.Amount)
	assert.Equal(t, "2026-09-15", result.Bill.DueDate.String())
	assert.Equal(t, models.BillStatusPending, result.Bill.Status)

	require.Len(t, bills.bills, 1)
	assert.Equal(t, "m1", bills.bills[0].MemberID)
	assert.Equal(t, "FitSync Central", bills.bills[0].GymName)
}

func TestEnrollBillAmountsPerPlan(t *testing.T) {
	joined := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		plan   string
		amount int64
	}{
		{models.PlanBasic, 1500},
		{models.PlanStandard, 2000},
		{models.PlanPremium, 2500},
	}

	for _, tc := range testCases {
		t.Run(tc.plan, func(t *testing.T) {
			gw := &fakeMemberGateway{gyms: []models.Gym{{ID: "g1", GymName: "FitSync Central"}}}
			bills := &fakeBillCreator{}
			service := NewService(gw, bills)

			input := premiumInput(joined)
			input.Plan = tc.plan

			result, err := service.Enroll(context.Background(), input)
			require.NoError(t, err)
			require.NotNil(t, result.Bill)
			assert.Equal(t, tc.amount, result.Bill.Amount)
		})
	}
}

func TestEnrollSurvivesBillingFailure(t *testing.T) {
	joined := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	gw := &fakeMemberGateway{gyms: []models.Gym{{ID: "g1", GymName: "FitSync Central"}}}
	bills := &fakeBillCreator{createErr: errors.New("billing is down")}
	service := NewService(gw, bills)

	result, err := service.Enroll(context.Background(), premiumInput(joined))
	require.NoError(t, err, "billing failure must not fail the enrollment")

	assert.Equal(t, "m1", result.Member.ID)
	assert.Nil(t, result.Bill)
	require.Error(t, result.BillErr)
	assert.Contains(t, result.BillErr.Error(), "billing is down")
}

func TestEnrollValidatesInput(t *testing.T) {
	gw := &fakeMemberGateway{}
	service := NewService(gw, &fakeBillCreator{})

	input := premiumInput(time.Now())
	input.Email = "not-an-email"

	_, err := service.Enroll(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrValidation)
}

func TestEnrollMemberCreationFailure(t *testing.T) {
	gw := &fakeMemberGateway{createErr: &gateway.APIError{Op: "CreateMember", StatusCode: 400, Message: "email already registered"}}
	bills := &fakeBillCreator{}
	service := NewService(gw, bills)

	_, err := service.Enroll(context.Background(), premiumInput(time.Now()))
	require.Error(t, err)
	assert.Empty(t, bills.bills, "no bill may be raised when enrollment fails")
}
