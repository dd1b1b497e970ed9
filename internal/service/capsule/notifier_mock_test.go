package capsule

import (
	"context"
	"sync"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendCapsuleOpenedFunc  func(ctx context.Context, to string, n domain.CapsuleOpenedNotification) domain.DispatchResult
	SendCapsuleCreatedFunc func(ctx context.Context, to string, n domain.CapsuleCreatedNotification) domain.DispatchResult

	calls struct {
		SendCapsuleOpened []struct {
			Ctx context.Context
			To  string
			N   domain.CapsuleOpenedNotification
		}
		SendCapsuleCreated []struct {
			Ctx context.Context
			To  string
			N   domain.CapsuleCreatedNotification
		}
	}
	lockSendCapsuleOpened  sync.RWMutex
	lockSendCapsuleCreated sync.RWMutex
}

func (mock *notifierMock) SendCapsuleOpened(ctx context.Context, to string, n domain.CapsuleOpenedNotification) domain.DispatchResult {
	if mock.SendCapsuleOpenedFunc == nil {
		panic("notifierMock.SendCapsuleOpenedFunc: method is nil but notifier.SendCapsuleOpened was just called")
	}
	callInfo := struct {
		Ctx context.Context
		To  string
		N   domain.CapsuleOpenedNotification
	}{Ctx: ctx, To: to, N: n}
	mock.lockSendCapsuleOpened.Lock()
	mock.calls.SendCapsuleOpened = append(mock.calls.SendCapsuleOpened, callInfo)
	mock.lockSendCapsuleOpened.Unlock()
	return mock.SendCapsuleOpenedFunc(ctx, to, n)
}

func (mock *notifierMock) SendCapsuleOpenedCalls() []struct {
	Ctx context.Context
	To  string
	N   domain.CapsuleOpenedNotification
} {
	mock.lockSendCapsuleOpened.RLock()
	calls := mock.calls.SendCapsuleOpened
	mock.lockSendCapsuleOpened.RUnlock()
	return calls
}

func (mock *notifierMock) SendCapsuleCreated(ctx context.Context, to string, n domain.CapsuleCreatedNotification) domain.DispatchResult {
	if mock.SendCapsuleCreatedFunc == nil {
		panic("notifierMock.SendCapsuleCreatedFunc: method is nil but notifier.SendCapsuleCreated was just called")
	}
	callInfo := struct {
		Ctx context.Context
		To  string
		N   domain.CapsuleCreatedNotification
	}{Ctx: ctx, To: to, N: n}
	mock.lockSendCapsuleCreated.Lock()
	mock.calls.SendCapsuleCreated = append(mock.calls.SendCapsuleCreated, callInfo)
	mock.lockSendCapsuleCreated.Unlock()
	return mock.SendCapsuleCreatedFunc(ctx, to, n)
}

func (mock *notifierMock) SendCapsuleCreatedCalls() []struct {
	Ctx context.Context
	To  string
	N   domain.CapsuleCreatedNotification
} {
	mock.lockSendCapsuleCreated.RLock()
	calls := mock.calls.SendCapsuleCreated
	mock.lockSendCapsuleCreated.RUnlock()
	return calls
}
