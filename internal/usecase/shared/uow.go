package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
)

type UnitOfWork interface {
	// Within: Serialised read-modify-write. fn works on a draft that only becomes
	// visible after the persistence collaborator has saved it.
	Within(ctx context.Context, fn func(ctx context.Context, st *State) error) error
	// WithinReadOnly: Consistent read of the committed state. fn must not mutate st.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, st *State) error) error
}

// StateStore is the persistence collaborator. Every Save carries the full state;
// implementations must not merge successive calls.
type StateStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Actor carries the per-request operator flag supplied by the session layer.
type Actor struct {
	Subject    string
	IsOperator bool
}

func OperatorActor(subject string) Actor {
	return Actor{Subject: subject, IsOperator: true}
}

func AnonymousActor() Actor {
	return Actor{}
}
