// Package members wraps member enrollment, including the first bill that a
// new membership generates.
package members

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"fitsync/internal/gateway"
	"fitsync/internal/logger"
	"fitsync/pkg/models"
)

// Gateway is the slice of the backend API enrollment depends on.
type Gateway interface {
	CreateMember(ctx context.Context, input models.MemberInput) (models.Member, error)
	ListGyms(ctx context.Context) ([]models.Gym, error)
}

// BillCreator creates the auto-generated first bill. Satisfied by
// billing.Ledger.
type BillCreator interface {
	Create(ctx context.Context, input models.BillInput) (models.Bill, error)
}

// Service handles member enrollment.
type Service struct {
	gw       Gateway
	bills    BillCreator
	log      zerolog.Logger
	validate *validator.Validate
}

// NewService creates an enrollment service.
func NewService(gw Gateway, bills BillCreator) *Service {
	return &Service{
		gw:       gw,
		bills:    bills,
		log:      logger.WithComponent("members"),
		validate: validator.New(),
	}
}

// EnrollResult reports the outcome of an enrollment. Bill creation is
// best-effort: BillErr is set when the member was created but the first bill
// was not.
type EnrollResult struct {
	Member  models.Member
	Bill    *models.Bill
	BillErr error
}

// Enroll creates the member, then creates their first bill: the amount comes
// from the member's plan tier and the due date is one calendar month out.
// A billing failure never rolls back the enrollment; it is logged and
// reported through the result instead.
func (s *Service) Enroll(ctx context.Context, input models.MemberInput) (EnrollResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return EnrollResult{}, fmt.Errorf("%w: %v", gateway.ErrValidation, err)
	}
	if input.JoinDate.IsZero() {
		input.JoinDate = models.NewDate(time.Now())
	}

	member, err := s.gw.CreateMember(ctx, input)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("Failed to enroll member")
		return EnrollResult{}, err
	}

	s.log.Info().
		Str("member_id", member.ID).
		Str("name", member.Name).
		Str("plan", member.Plan).
		Msg("Member enrolled")

	result := EnrollResult{Member: member}
	bill, err := s.createFirstBill(ctx, member, input)
	if err != nil {
		// The membership stands even when its first bill could not be raised.
		s.log.Error().Err(err).Str("member_id", member.ID).Msg("Failed to auto-create bill for new member")
		result.BillErr = err
		return result, nil
	}

	result.Bill = &bill
	return result, nil
}

func (s *Service) createFirstBill(ctx context.Context, member models.Member, input models.MemberInput) (models.Bill, error) {
	gymName := member.GymName
	if gymName == "" && input.GymID != "" {
		if gyms, err := s.gw.ListGyms(ctx); err == nil {
			for _, g := range gyms {
				if g.ID == input.GymID {
					gymName = g.GymName
					break
				}
			}
		}
	}

	billInput := models.BillInput{
		MemberID:   member.ID,
		MemberName: member.Name,
		GymID:      input.GymID,
		GymName:    gymName,
		Plan:       member.Plan,
		Amount:     models.PlanPrice(member.Plan),
		DueDate:    input.JoinDate.AddMonths(1),
	}

	bill, err := s.bills.Create(ctx, billInput)
	if err != nil {
		return models.Bill{}, err
	}

	s.log.Info().
		Str("bill_id", bill.ID).
		Str("member_id", member.ID).
		Int64("amount", bill.Amount).
		Str("due_date", bill.DueDate.String()).
		Msg("First bill created for new member")
	return bill, nil
}
