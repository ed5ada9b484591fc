package game

import "errors"

var (
	ErrInvalidPlayerCount    = errors.New("invalid player count")
	ErrInvalidPlayerName     = errors.New("invalid player name")
	ErrDuplicatePlayerID     = errors.New("duplicate player ID")
	ErrMissingPlayerResult   = errors.New("missing player result")
	ErrUnknownPlayerID       = errors.New("unknown player ID")
	ErrDuplicatePlayerResult = errors.New("duplicate player result")
	ErrInvalidScore          = errors.New("invalid score")
	ErrNoGame                = errors.New("no game in progress")
	ErrGameOver              = errors.New("game is over")
	ErrGameNotOver           = errors.New("game is not over")
)
