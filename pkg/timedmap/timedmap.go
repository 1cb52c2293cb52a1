// Package timedmap 提供按条目过期的并发 key-value 表。
//
// 条目越过各自的 deadline 后即不可读，物理删除由两条独立路径完成：
// 访问时的懒清除，以及周期性的批量清理（见 Cleanup / StartCleaner）。
package timedmap

import (
	"log/slog"
	"sync"
	"time"
)

type options struct {
	clock   Clock
	metrics *Metrics
	logger  *slog.Logger
}

// Option 自定义 Map 行为。
type Option func(*options)

// WithClock 注入替代时钟（测试或其他时钟域）。
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithMetrics 注入指标集合。
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger 注入 slog Logger。
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Map 是带过期时限的并发表。
//
// 整张表由单个读写锁保护。所有 check-then-mutate 路径都先释放共享锁
// 再获取独占锁，两次加锁之间存在一个窄窗口，同一 key 上并发的
// Set/Refresh/Extend 可能交错，最终状态为最后提交的写入。
// 这是有意接受的放松一致性，不是缺陷。
type Map[K comparable, V any] struct {
	clock   Clock
	metrics *Metrics
	logger  *slog.Logger

	mu    sync.RWMutex
	table map[K]Value[V]
}

// New 创建 Map，默认使用真实时钟。
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.clock == nil {
		o.clock = NewRealClock()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Map[K, V]{
		clock:   o.clock,
		metrics: o.metrics,
		logger:  o.logger,
		table:   make(map[K]Value[V]),
	}
}

// Set 写入 key-value 对并指定存活时长，无条件覆盖已有条目。
func (m *Map[K, V]) Set(key K, value V, lifetime time.Duration) {
	m.mu.Lock()
	m.table[key] = NewValue(value, lifetime, m.clock)
	size := len(m.table)
	m.mu.Unlock()

	m.metrics.incInsert()
	m.metrics.setEntries(size)
}

// Get 返回 key 对应值的副本。
//
// 条目缺失或已过期时返回 false；已过期但尚未清理的条目会在本次
// 读取中顺带从表中删除。
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.getChecked(key)
	if !ok {
		m.metrics.incMiss()
		var zero V
		return zero, false
	}
	m.metrics.incHit()
	return v.Value(), true
}

// Contains 判断 key 是否存在未过期的值。
// 它是 Get 的简写，同样会触发对过期条目的懒清除。
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove 将条目从表中删除。
//
// 已过期但仍在表中的条目同样被物理删除，但对调用方报告缺失。
func (m *Map[K, V]) Remove(key K) (V, bool) {
	m.mu.Lock()
	v, ok := m.table[key]
	if ok {
		delete(m.table, key)
	}
	size := len(m.table)
	m.mu.Unlock()

	if !ok {
		var zero V
		return zero, false
	}
	m.metrics.setEntries(size)
	return v.ValueChecked()
}

// Refresh 将 key 的时限绝对重置为 now + newLifetime。
// key 缺失或已过期时返回 false；对已过期条目的调用同样触发懒清除。
func (m *Map[K, V]) Refresh(key K, newLifetime time.Duration) bool {
	v, ok := m.getChecked(key)
	if !ok {
		return false
	}
	v.SetExpiry(newLifetime)

	m.mu.Lock()
	m.table[key] = v
	m.mu.Unlock()
	return true
}

// Extend 在 key 现有 deadline 上叠加 added。
// 存在与过期的判定与 Refresh 相同。
func (m *Map[K, V]) Extend(key K, added time.Duration) bool {
	v, ok := m.getChecked(key)
	if !ok {
		return false
	}
	v.ExtendExpiry(added)

	m.mu.Lock()
	m.table[key] = v
	m.mu.Unlock()
	return true
}

// Len 返回尚未过期的条目数。
// 只读计数：懒发现的过期条目不会被顺带删除。
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, v := range m.table {
		if !v.IsExpired() {
			n++
		}
	}
	return n
}

// IsEmpty 判断底层表是否为空。
//
// 与 Len 不同，这里不按过期过滤：表中只剩已过期、未清理条目时，
// IsEmpty 为 false 而 Len 为 0。
func (m *Map[K, V]) IsEmpty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.table) == 0
}

// RawLen 返回物理存在的条目数，含已过期未清理的条目。
func (m *Map[K, V]) RawLen() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.table)
}

// Clear 无条件清空整张表。
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	m.table = make(map[K]Value[V])
	m.mu.Unlock()
	m.metrics.setEntries(0)
}

// Snapshot 返回当前所有未过期条目的无序副本，不触发清除。
func (m *Map[K, V]) Snapshot() map[K]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[K]V, len(m.table))
	for k, v := range m.table {
		if !v.IsExpired() {
			out[k] = v.Value()
		}
	}
	return out
}

// Peek 返回原始包装器副本，不检查过期也不触发清除。
// 供需要过期元数据又不想产生副作用的调用方使用。
func (m *Map[K, V]) Peek(key K) (Value[V], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.table[key]
	return v, ok
}

// getChecked 是懒过期读取路径：共享锁下取包装器副本，
// 发现过期则升级为独占锁删除条目并报告缺失。
func (m *Map[K, V]) getChecked(key K) (Value[V], bool) {
	m.mu.RLock()
	v, ok := m.table[key]
	m.mu.RUnlock()

	if !ok {
		return Value[V]{}, false
	}
	if v.IsExpired() {
		m.evictExpired(key)
		return Value[V]{}, false
	}
	return v, true
}

func (m *Map[K, V]) evictExpired(key K) {
	m.mu.Lock()
	delete(m.table, key)
	size := len(m.table)
	m.mu.Unlock()

	m.metrics.incLazyEviction()
	m.metrics.setEntries(size)
}
