package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/capsule"
)

var _ capsuleService = &capsuleServiceMock{}

type capsuleServiceMock struct {
	CreateFunc func(ctx context.Context, input capsule.CreateInput) (*domain.Capsule, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Capsule, error)
	CheckFunc  func(ctx context.Context, id uuid.UUID) (*capsule.CheckResult, error)
	OpenFunc   func(ctx context.Context, id uuid.UUID) error
	SweepFunc  func(ctx context.Context) (capsule.SweepResult, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input capsule.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Check []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Open []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Sweep []struct {
			Ctx context.Context
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockCheck  sync.RWMutex
	lockOpen   sync.RWMutex
	lockSweep  sync.RWMutex
}

func (mock *capsuleServiceMock) Create(ctx context.Context, input capsule.CreateInput) (*domain.Capsule, error) {
	if mock.CreateFunc == nil {
		panic("capsuleServiceMock.CreateFunc: method is nil but capsuleService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input capsule.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *capsuleServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input capsule.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *capsuleServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Capsule, error) {
	if mock.GetFunc == nil {
		panic("capsuleServiceMock.GetFunc: method is nil but capsuleService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *capsuleServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *capsuleServiceMock) Check(ctx context.Context, id uuid.UUID) (*capsule.CheckResult, error) {
	if mock.CheckFunc == nil {
		panic("capsuleServiceMock.CheckFunc: method is nil but capsuleService.Check was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, id)
}

func (mock *capsuleServiceMock) CheckCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockCheck.RLock()
	calls := mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}

func (mock *capsuleServiceMock) Open(ctx context.Context, id uuid.UUID) error {
	if mock.OpenFunc == nil {
		panic("capsuleServiceMock.OpenFunc: method is nil but capsuleService.Open was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, id)
}

func (mock *capsuleServiceMock) OpenCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *capsuleServiceMock) Sweep(ctx context.Context) (capsule.SweepResult, error) {
	if mock.SweepFunc == nil {
		panic("capsuleServiceMock.SweepFunc: method is nil but capsuleService.Sweep was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSweep.Lock()
	mock.calls.Sweep = append(mock.calls.Sweep, callInfo)
	mock.lockSweep.Unlock()
	return mock.SweepFunc(ctx)
}

func (mock *capsuleServiceMock) SweepCalls() []struct {
	Ctx context.Context
} {
	mock.lockSweep.RLock()
	calls := mock.calls.Sweep
	mock.lockSweep.RUnlock()
	return calls
}
