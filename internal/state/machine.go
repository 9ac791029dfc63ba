package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"
)

// 工作区状态常量
const (
	StateEmpty   = "empty"   // 尚未上传任何文件
	StatePartial = "partial" // 部分文件已上传
	StateReady   = "ready"   // 三个文件齐全，可以出图
)

// 事件常量
const (
	EventAttach   = "attach"   // 上传了第一个文件
	EventComplete = "complete" // 三个文件全部就位
	EventReset    = "reset"    // 清空工作区
)

// Machine 工作区生命周期状态机
type Machine struct {
	mu       sync.RWMutex
	fsm      *fsm.FSM
	since    time.Time
	onChange func(from, to string)
}

// NewMachine 创建状态机，onChange 在状态变化后回调（用于推送给前端）
func NewMachine(onChange func(from, to string)) *Machine {
	m := &Machine{
		since:    time.Now(),
		onChange: onChange,
	}

	m.fsm = fsm.NewFSM(
		StateEmpty,
		fsm.Events{
			{Name: EventAttach, Src: []string{StateEmpty}, Dst: StatePartial},
			{Name: EventComplete, Src: []string{StatePartial}, Dst: StateReady},
			{Name: EventReset, Src: []string{StatePartial, StateReady}, Dst: StateEmpty},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				if m.onChange != nil && e.Src != e.Dst {
					m.onChange(e.Src, e.Dst)
				}
			},
		},
	)

	return m
}

// Current 获取当前状态
func (m *Machine) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fsm.Current()
}

// Since 当前状态的进入时间
func (m *Machine) Since() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.since
}

// Trigger 触发事件
func (m *Machine) Trigger(event string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fsm.Event(context.Background(), event); err != nil {
		return fmt.Errorf("trigger event %s: %w", event, err)
	}

	m.since = time.Now()
	return nil
}

// CanTransition 检查事件在当前状态下是否可触发
func (m *Machine) CanTransition(event string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fsm.Can(event)
}
