package lock

import (
	"sync"
)

var (
	lockMap sync.Map
)

// TryRun выполняет safeCode, только если по ключу сейчас ничего не выполняется.
// Повторный вызов с тем же ключом до завершения первого сразу возвращает acquired=false.
func TryRun(key string, safeCode func() error) (acquired bool, err error) {
	if _, loaded := lockMap.LoadOrStore(key, true); loaded {
		return false, nil
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

func IsLocked(key string) bool {
	_, ok := lockMap.Load(key)
	return ok
}
