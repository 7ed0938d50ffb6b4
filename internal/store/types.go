package store

import "time"

// now is the clock used for record timestamps. Overridable in tests.
var now = func() time.Time {
	return time.Now().UTC()
}

// Backend names accepted by the STORAGE_BACKEND setting.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)
