package infra

import (
	"errors"
	"log/slog"

	"gpark/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapStoreErr logs the failure and marks it as a storage error.
func WrapStoreErr(slogger *slog.Logger, kind StoreErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("State store error: "+msg, logArgs...)

	// msg is rendered by StoreError itself, so the cause only gets a stack.
	return errs.Mark(StoreError{Kind: kind, msg: msg, err: errs.WithStack(err)}, errs.ErrStorage)
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindIOFailure     StoreErrorKind = "IO_FAILURE"
	KindDBFailure     StoreErrorKind = "DB_FAILURE"
	KindObjectStore   StoreErrorKind = "OBJECT_STORE_FAILURE"
	KindCorruptRecord StoreErrorKind = "CORRUPT_RECORD"
)
