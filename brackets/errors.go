package brackets

import (
	"errors"
	"fmt"
)

// Виды ошибок движка. Конкретные ошибки оборачивают один из видов,
// поэтому errors.Is работает на обоих уровнях.
var (
	// ErrValidation - некорректный ввод, состояние не изменено.
	ErrValidation = errors.New("validation failed")
	// ErrPrecondition - предыдущий этап не завершён, состояние не изменено.
	ErrPrecondition = errors.New("stage precondition not met")
)

var (
	ErrSameTeam             = fmt.Errorf("%w: home and away teams must be different", ErrValidation)
	ErrNegativeGoals        = fmt.Errorf("%w: goals cannot be negative", ErrValidation)
	ErrTeamNotInGroup       = fmt.Errorf("%w: team is not a member of the group", ErrValidation)
	ErrGroupNotFound        = fmt.Errorf("%w: group not found", ErrValidation)
	ErrExtraTimeRequired    = fmt.Errorf("%w: regular time ended in a draw, extra time score is required", ErrValidation)
	ErrPenaltiesRequired    = fmt.Errorf("%w: extra time ended in a draw, penalty score is required", ErrValidation)
	ErrPenaltiesEqual       = fmt.Errorf("%w: penalties cannot be equal, one team must win", ErrValidation)
	ErrUnknownKnockoutMatch = fmt.Errorf("%w: unknown knockout match", ErrValidation)
	ErrInvalidDrawConfig    = fmt.Errorf("%w: group count and group size must be positive", ErrValidation)

	ErrParticipantWithoutClub = fmt.Errorf("%w: every participant must have a club before the draw", ErrPrecondition)
	ErrNotEnoughParticipants  = fmt.Errorf("%w: not enough participants", ErrPrecondition)
	ErrTooManyParticipants    = fmt.Errorf("%w: participants exceed group capacity", ErrPrecondition)
	ErrNotEnoughQualifiers    = fmt.Errorf("%w: not enough qualified teams", ErrPrecondition)
	ErrMatchNotReady          = fmt.Errorf("%w: both teams of the match must be known", ErrPrecondition)
	ErrMatchRecordNotFound    = fmt.Errorf("%w: match record not found", ErrPrecondition)
)
