package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

var errDownstream = errors.New("redis: connection refused")

// newTestBreaker 创建测试用熔断器(连续3次失败熔断)
func newTestBreaker(timeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("catalog-cache", Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

// TestCircuitBreaker_ClosedToOpen 测试连续失败触发熔断
func TestCircuitBreaker_ClosedToOpen(t *testing.T) {
	cb := newTestBreaker(30 * time.Second)

	if cb.State() != StateClosed {
		t.Fatalf("初始状态应为CLOSED, 实际: %v", cb.State())
	}

	// 连续3次失败
	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errDownstream })
		if !errors.Is(err, errDownstream) {
			t.Fatalf("第%d次调用应返回业务错误, 实际: %v", i+1, err)
		}
	}

	if cb.State() != StateOpen {
		t.Errorf("连续3次失败后应为OPEN, 实际: %v", cb.State())
	}

	// 打开状态下快速失败,不执行请求函数
	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrOpenState) {
		t.Errorf("打开状态应返回ErrOpenState, 实际: %v", err)
	}
	if called {
		t.Error("打开状态不应执行请求函数")
	}
}

// TestCircuitBreaker_SuccessResetsFailures 测试成功重置连续失败计数
func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := newTestBreaker(30 * time.Second)

	// 2次失败 + 1次成功 + 2次失败:不应熔断
	_ = cb.Execute(func() error { return errDownstream })
	_ = cb.Execute(func() error { return errDownstream })
	_ = cb.Execute(func() error { return nil })
	_ = cb.Execute(func() error { return errDownstream })
	_ = cb.Execute(func() error { return errDownstream })

	if cb.State() != StateClosed {
		t.Errorf("连续失败未达阈值应保持CLOSED, 实际: %v", cb.State())
	}
}

// TestCircuitBreaker_HalfOpenRecovery 测试半开状态探测恢复
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	// 超时设短,便于测试
	cb := newTestBreaker(50 * time.Millisecond)

	// 触发熔断
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errDownstream })
	}
	if cb.State() != StateOpen {
		t.Fatalf("应为OPEN, 实际: %v", cb.State())
	}

	// 等待超时,进入半开状态
	time.Sleep(60 * time.Millisecond)
	if cb.State() != StateHalfOpen {
		t.Fatalf("超时后应为HALF_OPEN, 实际: %v", cb.State())
	}

	// 半开状态探测成功,恢复为关闭
	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Fatalf("半开状态探测请求失败: %v", err)
	}
	if cb.State() != StateClosed {
		t.Errorf("探测成功后应为CLOSED, 实际: %v", cb.State())
	}
}

// TestCircuitBreaker_HalfOpenFailureReopens 测试半开状态失败回到打开
func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := newTestBreaker(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errDownstream })
	}

	time.Sleep(60 * time.Millisecond)

	// 半开状态探测失败,立即回到打开
	_ = cb.Execute(func() error { return errDownstream })
	if cb.State() != StateOpen {
		t.Errorf("半开探测失败后应为OPEN, 实际: %v", cb.State())
	}
}

// TestCircuitBreaker_StateChangeCallback 测试状态变化回调
func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	cb := newTestBreaker(30 * time.Second)

	var transitions []string
	cb.SetStateChangeCallback(func(name string, from State, to State) {
		transitions = append(transitions, from.String()+"->"+to.String())
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errDownstream })
	}

	if len(transitions) != 1 || transitions[0] != "CLOSED->OPEN" {
		t.Errorf("期望一次CLOSED->OPEN迁移, 实际: %v", transitions)
	}
}
