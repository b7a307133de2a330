package cache

import "time"

func NewMemoryStoreWithClock(now func() time.Time) Store {
	return newMemoryStore(now)
}
