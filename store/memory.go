package store

import "sync"

// Memory is an in-memory Medium. It backs tests and ad-hoc sessions that
// should not touch the database on disk.
type Memory struct {
	mu       sync.Mutex
	data     map[string][]byte
	watchers map[Token]func(Change)
	next     Token
}

// NewMemory returns an empty in-memory Medium.
func NewMemory() *Memory {
	return &Memory{
		data:     make(map[string][]byte),
		watchers: make(map[Token]func(Change)),
	}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte, origin Token) error {
	m.mu.Lock()
	m.data[key] = append([]byte(nil), value...)
	m.mu.Unlock()

	m.broadcast(Change{Key: key, Value: value}, origin)

	return nil
}

func (m *Memory) Delete(key string, origin Token) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	m.broadcast(Change{Key: key}, origin)

	return nil
}

func (m *Memory) Watch(fn func(Change)) (Token, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	token := m.next
	m.watchers[token] = fn

	return token, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		delete(m.watchers, token)
	}
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) broadcast(ch Change, origin Token) {
	m.mu.Lock()

	fns := make([]func(Change), 0, len(m.watchers))

	for token, fn := range m.watchers {
		if token != origin {
			fns = append(fns, fn)
		}
	}

	m.mu.Unlock()

	for _, fn := range fns {
		fn(ch)
	}
}
