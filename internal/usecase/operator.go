package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// DefaultOperatorPassword is given to operators created without one.
const DefaultOperatorPassword = "123456"

// OperatorUseCase manages staff accounts.
type OperatorUseCase struct {
	gw *Gateway
}

// NewOperatorUseCase constructs OperatorUseCase.
func NewOperatorUseCase(gw *Gateway) *OperatorUseCase {
	return &OperatorUseCase{gw: gw}
}

// Create adds an operator. Admins create operators; only a SuperAdmin may create admins.
func (u *OperatorUseCase) Create(ctx context.Context, actor model.Operator, operator model.Operator) (model.Operator, error) {
	if err := requirePrivileged(actor); err != nil {
		return model.Operator{}, err
	}
	if operator.Role == "" {
		operator.Role = model.RoleOperator
	}
	operator.Role = model.ParseRole(string(operator.Role))
	if operator.Role.Privileged() && actor.Role != model.RoleSuperAdmin {
		return model.Operator{}, domainErrors.ErrForbidden
	}

	if err := validateOperator(&operator); err != nil {
		return model.Operator{}, err
	}

	snapshot := u.gw.state.Snapshot()
	ids := make([]string, 0, len(snapshot.Operators))
	for _, existing := range snapshot.Operators {
		if strings.EqualFold(existing.Email, operator.Email) {
			return model.Operator{}, fmt.Errorf("operator %s: %w", operator.Email, domainErrors.ErrAlreadyExists)
		}
		ids = append(ids, existing.ID)
	}
	operator.ID = NextID(ids)
	if operator.Password == "" {
		operator.Password = DefaultOperatorPassword
	}
	operator.ProfileComplete = true

	if err := u.gw.write(ctx, func(e model.Endpoints) string { return e.Operators }, "operator", operatorRow(operator)); err != nil {
		return model.Operator{}, err
	}

	u.gw.state.ApplyMutation(func(s *model.Snapshot) {
		s.Operators = append(s.Operators, operator)
	})
	u.gw.resyncAfter(u.gw.delays.Task)
	return operator, nil
}

// CompleteProfile saves the actor's own profile. The actor keeps its id, or
// takes the id already stored for its email, or the next free one.
func (u *OperatorUseCase) CompleteProfile(ctx context.Context, actor model.Operator, profile model.Operator) (model.Operator, error) {
	profile.Email = actor.Email
	profile.Role = actor.Role
	if strings.TrimSpace(profile.Password) == "" {
		profile.Password = actor.Password
	}
	if err := validateOperator(&profile); err != nil {
		return model.Operator{}, err
	}

	snapshot := u.gw.state.Snapshot()
	profile.ID = actor.ID
	if profile.ID == "" || profile.ID == model.UnassignedOperatorID {
		ids := make([]string, 0, len(snapshot.Operators))
		for _, existing := range snapshot.Operators {
			if strings.EqualFold(existing.Email, profile.Email) && existing.ID != "" && existing.ID != model.UnassignedOperatorID {
				profile.ID = existing.ID
				break
			}
			ids = append(ids, existing.ID)
		}
		if profile.ID == "" || profile.ID == model.UnassignedOperatorID {
			profile.ID = NextID(ids)
		}
	}
	profile.ProfileComplete = true

	if err := u.gw.write(ctx, func(e model.Endpoints) string { return e.Operators }, "profile", operatorRow(profile)); err != nil {
		return model.Operator{}, err
	}

	u.gw.state.ApplyMutation(func(s *model.Snapshot) {
		for i := range s.Operators {
			if strings.EqualFold(s.Operators[i].Email, profile.Email) {
				s.Operators[i] = profile
				return
			}
		}
		s.Operators = append(s.Operators, profile)
	})
	u.gw.resyncAfter(u.gw.delays.Task)
	return profile, nil
}

func validateOperator(operator *model.Operator) error {
	operator.Email = strings.ToLower(strings.TrimSpace(operator.Email))
	if !strings.Contains(operator.Email, "@") {
		return domainErrors.ErrOperatorEmailRequired
	}
	operator.Name = strings.TrimSpace(operator.Name)
	operator.Surname = strings.TrimSpace(operator.Surname)
	if operator.Name == "" {
		return domainErrors.ErrOperatorNameRequired
	}
	return nil
}

func operatorRow(o model.Operator) map[string]any {
	return map[string]any{
		"operator id":   o.ID,
		"gmail":         o.Email,
		"ism":           o.Name,
		"familya":       o.Surname,
		"telefon nomer": withQuote(o.Phone),
		"lavozim":       string(o.Role),
		"parol":         o.Password,
		"manzil":        o.Address,
	}
}
