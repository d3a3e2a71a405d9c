package store

import (
	"errors"
	"io/fs"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var errChronosRunning = errors.New(
	"is chronos already running? Only one instance can be active at a time",
)

var kvBucket = []byte("kv")

// Client is a BoltDB-backed Medium. Change notifications are delivered
// in-process to every watcher other than the writer, which covers the
// multiple store instances (timer view, status command) that can share a
// single database handle.
type Client struct {
	db *bolt.DB

	mu       sync.Mutex
	watchers map[Token]func(Change)
	next     Token
}

// NewClient opens or creates the database at the given path.
func NewClient(dbPath string) (*Client, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		dbPath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errChronosRunning
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(kvBucket)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db:       db,
		watchers: make(map[Token]func(Change)),
	}, nil
}

func (c *Client) Get(key string) ([]byte, error) {
	var value []byte

	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(kvBucket).Get([]byte(key))
		if v != nil {
			// bolt-owned memory is only valid inside the transaction
			value = append([]byte(nil), v...)
		}

		return nil
	})

	return value, err
}

func (c *Client) Set(key string, value []byte, origin Token) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvBucket).Put([]byte(key), value)
	})
	if err != nil {
		return err
	}

	c.broadcast(Change{Key: key, Value: value}, origin)

	return nil
}

func (c *Client) Delete(key string, origin Token) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvBucket).Delete([]byte(key))
	})
	if err != nil {
		return err
	}

	c.broadcast(Change{Key: key}, origin)

	return nil
}

func (c *Client) Watch(fn func(Change)) (Token, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	token := c.next
	c.watchers[token] = fn

	return token, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(c.watchers, token)
	}
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) broadcast(ch Change, origin Token) {
	c.mu.Lock()

	fns := make([]func(Change), 0, len(c.watchers))

	for token, fn := range c.watchers {
		if token != origin {
			fns = append(fns, fn)
		}
	}

	c.mu.Unlock()

	for _, fn := range fns {
		fn(ch)
	}
}
