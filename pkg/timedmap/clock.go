package timedmap

import "time"

// Clock 抽象当前时刻的来源，便于测试中注入可控时钟。
// time.Time 自带全序比较与 Duration 加减，满足过期计算的全部需求。
type Clock interface {
	Now() time.Time
}

// realClock 使用 time.Now。
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock 返回默认时钟实现。
func NewRealClock() Clock { return realClock{} }
