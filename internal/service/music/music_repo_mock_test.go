package music

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

var _ musicRepo = &musicRepoMock{}

type musicRepoMock struct {
	ListJarTypesFunc       func(ctx context.Context) ([]domain.JarType, error)
	AddSongFunc            func(ctx context.Context, s *domain.Song) (*domain.Song, error)
	RandomSongFunc         func(ctx context.Context) (*domain.Song, error)
	RandomSongInJarFunc    func(ctx context.Context, jarType string) (*domain.Song, error)
	IncrementPlayCountFunc func(ctx context.Context, id uuid.UUID) (int, error)

	calls struct {
		ListJarTypes []struct {
			Ctx context.Context
		}
		AddSong []struct {
			Ctx context.Context
			S   *domain.Song
		}
		RandomSong []struct {
			Ctx context.Context
		}
		RandomSongInJar []struct {
			Ctx     context.Context
			JarType string
		}
		IncrementPlayCount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListJarTypes       sync.RWMutex
	lockAddSong            sync.RWMutex
	lockRandomSong         sync.RWMutex
	lockRandomSongInJar    sync.RWMutex
	lockIncrementPlayCount sync.RWMutex
}

func (mock *musicRepoMock) ListJarTypes(ctx context.Context) ([]domain.JarType, error) {
	if mock.ListJarTypesFunc == nil {
		panic("musicRepoMock.ListJarTypesFunc: method is nil but musicRepo.ListJarTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListJarTypes.Lock()
	mock.calls.ListJarTypes = append(mock.calls.ListJarTypes, callInfo)
	mock.lockListJarTypes.Unlock()
	return mock.ListJarTypesFunc(ctx)
}

func (mock *musicRepoMock) ListJarTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListJarTypes.RLock()
	calls := mock.calls.ListJarTypes
	mock.lockListJarTypes.RUnlock()
	return calls
}

func (mock *musicRepoMock) AddSong(ctx context.Context, s *domain.Song) (*domain.Song, error) {
	if mock.AddSongFunc == nil {
		panic("musicRepoMock.AddSongFunc: method is nil but musicRepo.AddSong was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Song
	}{Ctx: ctx, S: s}
	mock.lockAddSong.Lock()
	mock.calls.AddSong = append(mock.calls.AddSong, callInfo)
	mock.lockAddSong.Unlock()
	return mock.AddSongFunc(ctx, s)
}

func (mock *musicRepoMock) AddSongCalls() []struct {
	Ctx context.Context
	S   *domain.Song
} {
	mock.lockAddSong.RLock()
	calls := mock.calls.AddSong
	mock.lockAddSong.RUnlock()
	return calls
}

func (mock *musicRepoMock) RandomSong(ctx context.Context) (*domain.Song, error) {
	if mock.RandomSongFunc == nil {
		panic("musicRepoMock.RandomSongFunc: method is nil but musicRepo.RandomSong was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRandomSong.Lock()
	mock.calls.RandomSong = append(mock.calls.RandomSong, callInfo)
	mock.lockRandomSong.Unlock()
	return mock.RandomSongFunc(ctx)
}

func (mock *musicRepoMock) RandomSongCalls() []struct {
	Ctx context.Context
} {
	mock.lockRandomSong.RLock()
	calls := mock.calls.RandomSong
	mock.lockRandomSong.RUnlock()
	return calls
}

func (mock *musicRepoMock) RandomSongInJar(ctx context.Context, jarType string) (*domain.Song, error) {
	if mock.RandomSongInJarFunc == nil {
		panic("musicRepoMock.RandomSongInJarFunc: method is nil but musicRepo.RandomSongInJar was just called")
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

func (mock *musicRepoMock) RandomSongInJarCalls() []struct {
	Ctx     context.Context
	JarType string
} {
	mock.lockRandomSongInJar.RLock()
	calls := mock.calls.RandomSongInJar
	mock.lockRandomSongInJar.RUnlock()
	return calls
}

func (mock *musicRepoMock) IncrementPlayCount(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.IncrementPlayCountFunc == nil {
		panic("musicRepoMock.IncrementPlayCountFunc: method is nil but musicRepo.IncrementPlayCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementPlayCount.Lock()
	mock.calls.IncrementPlayCount = append(mock.calls.IncrementPlayCount, callInfo)
	mock.lockIncrementPlayCount.Unlock()
	return mock.IncrementPlayCountFunc(ctx, id)
}

func (mock *musicRepoMock) IncrementPlayCountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementPlayCount.RLock()
	calls := mock.calls.IncrementPlayCount
	mock.lockIncrementPlayCount.RUnlock()
	return calls
}
