package timedmap

import "time"

// Value 包装单个条目的值与过期时限。
//
// 过期判断使用严格大于：恰好等于 deadline 的时刻尚未过期。
// 包装器由表独占持有，读取时值按副本返回。
type Value[V any] struct {
	value    V
	deadline time.Time
	clock    Clock
}

// NewValue 创建包装器，deadline = clock.Now() + lifetime。
// lifetime 为零是合法的：条目对任何严格晚于创建时刻的访问立即过期。
func NewValue[V any](value V, lifetime time.Duration, clock Clock) Value[V] {
	if clock == nil {
		clock = NewRealClock()
	}
	return Value[V]{
		value:    value,
		deadline: clock.Now().Add(lifetime),
		clock:    clock,
	}
}

// IsExpired 以当前时刻判断条目是否已过期。
func (v Value[V]) IsExpired() bool {
	return v.clock.Now().After(v.deadline)
}

// IsExpiredAt 以调用方给定的时刻判断过期。
// 清理批次用同一个快照时刻调用它，保证整批条目共享一个一致的截止点。
func (v Value[V]) IsExpiredAt(t time.Time) bool {
	return t.After(v.deadline)
}

// SetExpiry 丢弃原有时限，绝对重置为 now + lifetime。
func (v *Value[V]) SetExpiry(lifetime time.Duration) {
	v.deadline = v.clock.Now().Add(lifetime)
}

// ExtendExpiry 在原 deadline 上叠加时长，不参考当前时刻。
// 已过期但尚未清除的条目可以由此回到未来。
func (v *Value[V]) ExtendExpiry(added time.Duration) {
	v.deadline = v.deadline.Add(added)
}

// Deadline 返回过期时刻。
func (v Value[V]) Deadline() time.Time { return v.deadline }

// Value 返回内部值的副本。
func (v Value[V]) Value() V { return v.value }

// ValueChecked 仅在未过期时返回内部值。
func (v Value[V]) ValueChecked() (V, bool) {
	if v.IsExpired() {
		var zero V
		return zero, false
	}
	return v.value, true
}
