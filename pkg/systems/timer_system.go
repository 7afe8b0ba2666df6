package systems

import (
	"log"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/ecs"
)

// timerEpsilon 累加帧间隔时的浮点误差容限
// 30 次累加 1/60 可能得到 0.49999999999999994，仍应视为到达 0.5 秒
const timerEpsilon = 1e-9

// TimerSystem 延迟动作调度器
//
// 每个延迟动作是一个携带 DeferredActionComponent 的实体。
// 到期时执行一次回调并销毁实体；同一帧内到期的多个动作按调度顺序执行。
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建延迟动作调度器
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{
		entityManager: em,
	}
}

// After 在 delay 秒后执行 action
//
// 参数:
//   - delay: 延迟（秒）
//   - name: 动作名称，用于日志和 Pending 查询
//   - action: 到期时执行的回调
//
// 返回:
//   - ecs.EntityID: 延迟动作实体ID，可用于 Cancel
func (s *TimerSystem) After(delay float64, name string, action func()) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.DeferredActionComponent{
		Name:       name,
		TargetTime: delay,
		Action:     action,
	})
	return id
}

// Cancel 取消尚未执行的延迟动作
// 返回 false 表示动作不存在或已经执行
func (s *TimerSystem) Cancel(id ecs.EntityID) bool {
	timer, ok := ecs.GetComponent[*components.DeferredActionComponent](s.entityManager, id)
	if !ok || timer.IsFired {
		return false
	}

	timer.IsFired = true
	s.entityManager.DestroyEntity(id)
	return true
}

// Pending 返回指定名称尚未执行的延迟动作数量
func (s *TimerSystem) Pending(name string) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.DeferredActionComponent](s.entityManager) {
		timer, ok := ecs.GetComponent[*components.DeferredActionComponent](s.entityManager, id)
		if ok && !timer.IsFired && timer.Name == name {
			count++
		}
	}
	return count
}

// Update 推进所有延迟动作，执行到期的回调
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *TimerSystem) Update(deltaTime float64) {
	timers := ecs.GetEntitiesWith1[*components.DeferredActionComponent](s.entityManager)

	for _, id := range timers {
		timer, ok := ecs.GetComponent[*components.DeferredActionComponent](s.entityManager, id)
		if !ok || timer.IsFired {
			continue
		}

		timer.CurrentTime += deltaTime
		if timer.CurrentTime+timerEpsilon < timer.TargetTime {
			continue
		}

		timer.IsFired = true
		s.entityManager.DestroyEntity(id)

		log.Printf("[TimerSystem] 延迟动作到期: %s (%.3fs)", timer.Name, timer.CurrentTime)
		if timer.Action != nil {
			timer.Action()
		}
	}
}
