package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeRoomFull            = 4004
	CodeInvalidState        = 4005
	CodeNotInRoom           = 4006
	CodePotLimitExceeded    = 4007
	CodeAlreadyCompleted    = 4008
	CodeValidation          = 4009
	CodeUnauthenticated     = 4010
	CodeUserNotFound        = 4040
	CodeRoomNotFound        = 4041
	CodeBootNotFound        = 4042
	CodeConstraintViolation = 4050

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a user's wallet cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a bet or transaction amount is not positive
	// or exceeds the ceiling for its kind
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrNegativeBalance is returned when an operation would drive a wallet below zero
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrRoomFull is returned when a room has no free seat
	ErrRoomFull = errors.New("room is full")

	// ErrAlreadySeated is returned when a user is already seated in the room;
	// callers treat it as an idempotent no-op, not a failure
	ErrAlreadySeated = errors.New("user already seated in room")

	// ErrNotInRoom is returned when an action references a room the user is not seated in
	ErrNotInRoom = errors.New("user is not part of this room")

	// ErrInvalidState is returned when the requested room transition is not allowed
	ErrInvalidState = errors.New("invalid room state for this action")

	// ErrAlreadyCompleted is returned when completing a room that already finished
	ErrAlreadyCompleted = errors.New("game already completed")

	// ErrPotLimitExceeded is returned when a bet would push the pot past max_pot_amount
	ErrPotLimitExceeded = errors.New("pot limit exceeded")

	// ErrRoomDeleted signals that an unseat removed the last player and the room is gone
	ErrRoomDeleted = errors.New("room deleted")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrRoomNotFound is returned when the requested room doesn't exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrBootNotFound is returned when the requested boot configuration doesn't exist
	ErrBootNotFound = errors.New("boot not found")

	// ErrUserBusy is returned when oneActiveRoomPerUser is enabled and the user
	// is already seated elsewhere
	ErrUserBusy = errors.New("user is already seated in another room")

	// ErrUnauthenticated is returned when no user identity accompanies the request
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrShuttingDown is returned for work arriving while the server drains
	ErrShuttingDown = errors.New("server is shutting down")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrRoomFull):
		return CodeRoomFull
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrNotInRoom), errors.Is(err, ErrUserBusy):
		return CodeNotInRoom
	case errors.Is(err, ErrPotLimitExceeded):
		return CodePotLimitExceeded
	case errors.Is(err, ErrAlreadyCompleted):
		return CodeAlreadyCompleted
	case errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrRoomDeleted):
		return CodeRoomNotFound
	case errors.Is(err, ErrBootNotFound):
		return CodeBootNotFound
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      int64
	CurrBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d, available %d",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance int64) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// BetError represents a failure while validating or committing a bet
type BetError struct {
	RoomID string
	UserID uint64
	Kind   string
	Amount int64
	Err    error
}

// Error implements the error interface for BetError
func (e *BetError) Error() string {
	return fmt.Sprintf("bet rejected for user %d in room %s (kind: %s, amount: %d): %v",
		e.UserID, e.RoomID, e.Kind, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BetError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BetError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "bet_error",
		"room_id":    e.RoomID,
		"user_id":    e.UserID,
		"kind":       e.Kind,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBetError creates a detailed bet error
func NewBetError(roomID string, userID uint64, kind string, amount int64, err error) error {
	return &BetError{
		RoomID: roomID,
		UserID: userID,
		Kind:   kind,
		Amount: amount,
		Err:    err,
	}
}

// StateError reports a rejected room state transition
type StateError struct {
	RoomID string
	From   string
	Action string
}

// Error implements the error interface
func (e *StateError) Error() string {
	return fmt.Sprintf("room %s cannot %s while %s", e.RoomID, e.Action, e.From)
}

// Is checks if the target error is an ErrInvalidState
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// NewStateError creates a detailed state transition error
func NewStateError(roomID, from, action string) error {
	return &StateError{RoomID: roomID, From: from, Action: action}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrBootNotFound)
}

// IsConflictError checks if the error is a conflict-type rejection
func IsConflictError(err error) bool {
	return errors.Is(err, ErrRoomFull) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrAlreadyCompleted) ||
		errors.Is(err, ErrUserBusy)
}
