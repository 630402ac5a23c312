// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"log/slog"
)

// Kind classifies a failure so the transport can pick a status code
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindInvalidArgument
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by every operation in this package.
// Message is safe to show to end users.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same kind and message, so wrapped
// copies of the sentinels below still compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrPollNotFound   = &Error{Kind: KindNotFound, Message: "Sondage introuvable"}
	ErrAlreadyVoted   = &Error{Kind: KindConflict, Message: "Vous avez déjà voté pour ce sondage"}
	ErrSingleChoice   = &Error{Kind: KindInvalidArgument, Message: "Ce sondage n'autorise qu'une seule réponse"}
	ErrInvalidOptions = &Error{Kind: KindInvalidArgument, Message: "Une ou plusieurs options sont invalides"}
	ErrTooFewOptions  = &Error{Kind: KindInvalidArgument, Message: "Un sondage doit comporter au moins deux options"}
	ErrEmptyOption    = &Error{Kind: KindInvalidArgument, Message: "Le texte d'une option ne peut pas être vide"}
	ErrTitleRequired  = &Error{Kind: KindInvalidArgument, Message: "Le titre est requis"}
	ErrVoterRequired  = &Error{Kind: KindInvalidArgument, Message: "L'identifiant du votant est requis"}
	ErrNoOptionChosen = &Error{Kind: KindInvalidArgument, Message: "Au moins une option doit être sélectionnée"}
	ErrStorageFailure = &Error{Kind: KindStorageFailure, Message: "Erreur de stockage"}
)

// KindOf returns the kind carried by err, or KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// storageError logs a persistence failure and wraps it for the caller
func storageError(logger *slog.Logger, event string, err error, attrs ...any) error {
	logger.Error(event, append([]any{"error", err}, attrs...)...)
	return &Error{Kind: KindStorageFailure, Message: ErrStorageFailure.Message, Err: err}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
