package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
	"github.com/gulzeynep/GiftCapsule-web/internal/service/music"
)

var _ musicService = &musicServiceMock{}

type musicServiceMock struct {
	ListJarTypesFunc    func(ctx context.Context) ([]domain.JarType, error)
	AddSongFunc         func(ctx context.Context, input music.AddSongInput) (*domain.Song, error)
	RandomSongFunc      func(ctx context.Context) (*domain.Song, error)
	RandomSongInJarFunc func(ctx context.Context, jarType string) (*domain.Song, error)
	PlayFunc            func(ctx context.Context, id uuid.UUID) (int, error)

	calls struct {
		ListJarTypes []struct {
			Ctx context.Context
		}
		AddSong []struct {
			Ctx   context.Context
			Input music.AddSongInput
		}
		RandomSong []struct {
			Ctx context.Context
		}
		RandomSongInJar []struct {
			Ctx     context.Context
			JarType string
		}
		Play []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListJarTypes    sync.RWMutex
	lockAddSong         sync.RWMutex
	lockRandomSong      sync.RWMutex
	lockRandomSongInJar sync.RWMutex
	lockPlay            sync.RWMutex
}

func (mock *musicServiceMock) ListJarTypes(ctx context.Context) ([]domain.JarType, error) {
	if mock.ListJarTypesFunc == nil {
		panic("musicServiceMock.ListJarTypesFunc: method is nil but musicService.ListJarTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListJarTypes.Lock()
	mock.calls.ListJarTypes = append(mock.calls.ListJarTypes, callInfo)
	mock.lockListJarTypes.Unlock()
	return mock.ListJarTypesFunc(ctx)
}

func (mock *musicServiceMock) ListJarTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListJarTypes.RLock()
	calls := mock.calls.ListJarTypes
	mock.lockListJarTypes.RUnlock()
	return calls
}

func (mock *musicServiceMock) AddSong(ctx context.Context, input music.AddSongInput) (*domain.Song, error) {
	if mock.AddSongFunc == nil {
		panic("musicServiceMock.AddSongFunc: method is nil but musicService.AddSong was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input music.AddSongInput
	}{Ctx: ctx, Input: input}
	mock.lockAddSong.Lock()
	mock.calls.AddSong = append(mock.calls.AddSong, callInfo)
	mock.lockAddSong.Unlock()
	return mock.AddSongFunc(ctx, input)
}

func (mock *musicServiceMock) AddSongCalls() []struct {
	Ctx   context.Context
	Input music.AddSongInput
} {
	mock.lockAddSong.RLock()
	calls := mock.calls.AddSong
	mock.lockAddSong.RUnlock()
	return calls
}

func (mock *musicServiceMock) RandomSong(ctx context.Context) (*domain.Song, error) {
	if mock.RandomSongFunc == nil {
		panic("musicServiceMock.RandomSongFunc: method is nil but musicService.RandomSong was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRandomSong.Lock()
	mock.calls.RandomSong = append(mock.calls.RandomSong, callInfo)
	mock.lockRandomSong.Unlock()
	return mock.RandomSongFunc(ctx)
}

func (mock *musicServiceMock) RandomSongCalls() []struct {
	Ctx context.Context
} {
	mock.lockRandomSong.RLock()
	calls := mock.calls.RandomSong
	mock.lockRandomSong.RUnlock()
	return calls
}

func (mock *musicServiceMock) RandomSongInJar(ctx context.Context, jarType string) (*domain.Song, error) {
	if mock.RandomSongInJarFunc == nil {
		panic("musicServiceMock.RandomSongInJarFunc: method is nil but musicService.RandomSongInJar was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		JarType string
	}{Ctx: ctx, JarType: jarType}
	mock.lockRandomSongInJar.Lock()
	mock.calls.RandomSongInJar = append(mock.calls.RandomSongInJar, callInfo)
	mock.lockRandomSongInJar.Unlock()
	return mock.RandomSongInJarFunc(ctx, jarType)
}

func (mock *musicServiceMock) RandomSongInJarCalls() []struct {
	Ctx     context.Context
	JarType string
} {
	mock.lockRandomSongInJar.RLock()
	calls := mock.calls.RandomSongInJar
	mock.lockRandomSongInJar.RUnlock()
	return calls
}

func (mock *musicServiceMock) Play(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.PlayFunc == nil {
		panic("musicServiceMock.PlayFunc: method is nil but musicService.Play was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockPlay.Lock()
	mock.calls.Play = append(mock.calls.Play, callInfo)
	mock.lockPlay.Unlock()
	return mock.PlayFunc(ctx, id)
}

func (mock *musicServiceMock) PlayCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockPlay.RLock()
	calls := mock.calls.Play
	mock.lockPlay.RUnlock()
	return calls
}
