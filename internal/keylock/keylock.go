// Package keylock はキー単位の排他ロックを提供します。
// 同じキーへの読み取り→計算→書き込みを直列化し、異なるキー同士は並行に動く。
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Locker はキーごとの Mutex を参照カウント付きで管理します。ゼロ値で利用可能。
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock は key のロックを取得し、解放関数を返します。
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*entry)
	}
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len は保持中のキー数を返します。
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
