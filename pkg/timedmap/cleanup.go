package timedmap

import (
	"log/slog"
	"sync"
	"time"
)

// Cleaner 定义可以批量清除过期元素的实现。
type Cleaner interface {
	Cleanup()
}

// Cleanup 执行一次批量清理。
//
// 以一次 clock.Now() 快照作为整批条目的统一截止点：共享锁下收集
// 过期 key，没有命中则不取独占锁直接返回；否则一次独占锁内全部删除。
// 收集与删除之间条目可能被刷新，仍会按快照时刻的判定被删除——
// 与访问路径相同的放松一致性取舍。重复调用是幂等的。
func (m *Map[K, V]) Cleanup() {
	now := m.clock.Now()

	var keys []K
	m.mu.RLock()
	for k, v := range m.table {
		if v.IsExpiredAt(now) {
			keys = append(keys, k)
		}
	}
	m.mu.RUnlock()

	m.metrics.incSweep()
	if len(keys) == 0 {
		return
	}

	m.mu.Lock()
	for _, k := range keys {
		delete(m.table, k)
	}
	size := len(m.table)
	m.mu.Unlock()

	m.metrics.addSweepEvictions(len(keys))
	m.metrics.setEntries(size)
	m.logger.Debug("sweep removed expired entries", slog.Int("count", len(keys)))
}

// StartCleaner 按固定间隔驱动 c.Cleanup，返回取消函数。
//
// 第一次清理发生在第一个间隔结束之后，而非启动当下。取消函数幂等，
// 只阻止后续触发：既不等待在途清理结束，也不回滚已完成的删除。
func StartCleaner(c Cleaner, interval time.Duration) (cancel func()) {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Cleanup()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
	}
}
