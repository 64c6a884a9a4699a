package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/cup-organizer/brackets"
)

// Виды ошибок. Всё, что оборачивает ErrValidationFailed, означает неверный ввод (400),
// ErrPreconditionFailed - не завершён предыдущий этап (409).
var (
	ErrValidationFailed   = brackets.ErrValidation
	ErrPreconditionFailed = brackets.ErrPrecondition

	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")
)

var (
	ErrParticipantNotFound = fmt.Errorf("%w: participant", ErrNotFound)
	ErrMatchNotFound       = fmt.Errorf("%w: match", ErrNotFound)

	// Ошибки ввода
	ErrNameRequired        = fmt.Errorf("%w: participant name is required", ErrValidationFailed)
	ErrNameTooLong         = fmt.Errorf("%w: participant name is too long", ErrValidationFailed)
	ErrParticipantExists   = fmt.Errorf("%w: participant with this name already exists", ErrValidationFailed)
	ErrInvalidAvatar       = fmt.Errorf("%w: unknown avatar", ErrValidationFailed)
	ErrInvalidImageURL     = fmt.Errorf("%w: custom image must be an absolute http(s) URL", ErrValidationFailed)
	ErrClubAlreadyAssigned = fmt.Errorf("%w: participant already has a club", ErrValidationFailed)
	ErrInvalidSettings     = fmt.Errorf("%w: group count and group size must be positive", ErrValidationFailed)

	// Ошибки этапов
	ErrIntakeClosed          = fmt.Errorf("%w: participants are already ordered, reset ordering to change the roster", ErrPreconditionFailed)
	ErrRosterFull            = fmt.Errorf("%w: roster is full for the configured groups", ErrPreconditionFailed)
	ErrAlreadyOrdered        = fmt.Errorf("%w: participants are already ordered", ErrPreconditionFailed)
	ErrNotEnoughParticipants = fmt.Errorf("%w: at least 2 participants are required", ErrPreconditionFailed)
	ErrOrderingRequired      = fmt.Errorf("%w: participants must be ordered first", ErrPreconditionFailed)
	ErrNoClubsAvailable      = fmt.Errorf("%w: no clubs left in the pool", ErrPreconditionFailed)
	ErrAlreadyDrawn          = fmt.Errorf("%w: groups are already drawn", ErrPreconditionFailed)
	ErrDrawRequired          = fmt.Errorf("%w: groups must be drawn first", ErrPreconditionFailed)
	ErrKnockoutInProgress    = fmt.Errorf("%w: knockout results exist, reset the bracket first", ErrPreconditionFailed)
	ErrBracketExists         = fmt.Errorf("%w: bracket is already seeded", ErrPreconditionFailed)
	ErrBracketRequired       = fmt.Errorf("%w: bracket is not seeded yet", ErrPreconditionFailed)
	ErrUnsupportedBracket    = fmt.Errorf("%w: knockout bracket requires exactly 8 qualifiers", ErrPreconditionFailed)
)
