package capsule

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

var _ capsuleRepo = &capsuleRepoMock{}

type capsuleRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Capsule, error)
	CreateFunc               func(ctx context.Context, c *domain.Capsule) (*domain.Capsule, error)
	MarkNotificationSentFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	MarkOpenedFunc           func(ctx context.Context, id uuid.UUID) error
	ListPendingFunc          func(ctx context.Context) ([]domain.Capsule, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Capsule
		}
		MarkNotificationSent []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkOpened []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPending []struct {
			Ctx context.Context
		}
	}
	lockGetByID              sync.RWMutex
	lockCreate               sync.RWMutex
	lockMarkNotificationSent sync.RWMutex
	lockMarkOpened           sync.RWMutex
	lockListPending          sync.RWMutex
}

func (mock *capsuleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Capsule, error) {
	if mock.GetByIDFunc == nil {
		panic("capsuleRepoMock.GetByIDFunc: method is nil but capsuleRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *capsuleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *capsuleRepoMock) Create(ctx context.Context, c *domain.Capsule) (*domain.Capsule, error) {
	if mock.CreateFunc == nil {
		panic("capsuleRepoMock.CreateFunc: method is nil but capsuleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Capsule
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *capsuleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Capsule
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *capsuleRepoMock) MarkNotificationSent(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.MarkNotificationSentFunc == nil {
		panic("capsuleRepoMock.MarkNotificationSentFunc: method is nil but capsuleRepo.MarkNotificationSent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkNotificationSent.Lock()
	mock.calls.MarkNotificationSent = append(mock.calls.MarkNotificationSent, callInfo)
	mock.lockMarkNotificationSent.Unlock()
	return mock.MarkNotificationSentFunc(ctx, id)
}

func (mock *capsuleRepoMock) MarkNotificationSentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkNotificationSent.RLock()
	calls := mock.calls.MarkNotificationSent
	mock.lockMarkNotificationSent.RUnlock()
	return calls
}

func (mock *capsuleRepoMock) MarkOpened(ctx context.Context, id uuid.UUID) error {
	if mock.MarkOpenedFunc == nil {
		panic("capsuleRepoMock.MarkOpenedFunc: method is nil but capsuleRepo.MarkOpened was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkOpened.Lock()
	mock.calls.MarkOpened = append(mock.calls.MarkOpened, callInfo)
	mock.lockMarkOpened.Unlock()
	return mock.MarkOpenedFunc(ctx, id)
}

func (mock *capsuleRepoMock) MarkOpenedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkOpened.RLock()
	calls := mock.calls.MarkOpened
	mock.lockMarkOpened.RUnlock()
	return calls
}

func (mock *capsuleRepoMock) ListPending(ctx context.Context) ([]domain.Capsule, error) {
	if mock.ListPendingFunc == nil {
		panic("capsuleRepoMock.ListPendingFunc: method is nil but capsuleRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx)
}

func (mock *capsuleRepoMock) ListPendingCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}
