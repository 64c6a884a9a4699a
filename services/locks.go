package services

import "sync"

// TournamentLocks сериализует изменения одного турнира. Разные турниры не блокируют друг друга.
type TournamentLocks struct {
	mu    sync.Mutex
	locks map[string]*tournamentLock
}

type tournamentLock struct {
	mu   sync.Mutex
	refs int
}

func NewTournamentLocks() *TournamentLocks {
	return &TournamentLocks{locks: make(map[string]*tournamentLock)}
}

// Lock блокирует турнир и возвращает функцию разблокировки.
func (l *TournamentLocks) Lock(tournamentID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[tournamentID]
	if !ok {
		lock = &tournamentLock{}
		l.locks[tournamentID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, tournamentID)
		}
		l.mu.Unlock()
	}
}
