package systems

import (
	"testing"

	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/decker502/pigeonrun/pkg/utils"
)

// frameDelta 测试统一使用的参考帧间隔
const frameDelta = config.ReferenceDeltaTime

// newTestWorld 创建测试用实体管理器和场景状态
// mutate 可在校验前修改默认配置
func newTestWorld(t *testing.T, mutate func(cfg *config.GameConfig)) (*ecs.EntityManager, *game.WorldState) {
	t.Helper()

	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(cfg)
	}

	state, err := game.NewWorldState(cfg, utils.NewRandomSource(42))
	if err != nil {
		t.Fatalf("NewWorldState() error = %v", err)
	}
	return ecs.NewEntityManager(), state
}

// fixedRandom 返回固定值的随机数来源
type fixedRandom struct {
	intn int
	roll float64
}

func (r *fixedRandom) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

func (r *fixedRandom) Float64() float64 {
	return r.roll
}

// approxEqual 浮点数近似比较
func approxEqual(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	return d < eps && d > -eps
}
