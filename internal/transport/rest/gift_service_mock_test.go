package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/gift"
)

var _ giftService = &giftServiceMock{}

type giftServiceMock struct {
	CreateFunc     func(ctx context.Context, input gift.CreateInput) (*gift.CreateResult, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Gift, error)
	MarkViewedFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input gift.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkViewed []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGet        sync.RWMutex
	lockMarkViewed sync.RWMutex
}

func (mock *giftServiceMock) Create(ctx context.Context, input gift.CreateInput) (*gift.CreateResult, error) {
	if mock.CreateFunc == nil {
		panic("giftServiceMock.CreateFunc: method is nil but giftService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input gift.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *giftServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input gift.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *giftServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Gift, error) {
	if mock.GetFunc == nil {
		panic("giftServiceMock.GetFunc: method is nil but giftService.Get was just called")
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

func (mock *giftServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *giftServiceMock) MarkViewed(ctx context.Context, id uuid.UUID) error {
	if mock.MarkViewedFunc == nil {
		panic("giftServiceMock.MarkViewedFunc: method is nil but giftService.MarkViewed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkViewed.Lock()
	mock.calls.MarkViewed = append(mock.calls.MarkViewed, callInfo)
	mock.lockMarkViewed.Unlock()
	return mock.MarkViewedFunc(ctx, id)
}

func (mock *giftServiceMock) MarkViewedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkViewed.RLock()
	calls := mock.calls.MarkViewed
	mock.lockMarkViewed.RUnlock()
	return calls
}
