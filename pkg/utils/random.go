package utils

import (
	"math/rand"
	"time"
)

// RandomSource 随机数来源
// *rand.Rand 满足此接口；测试中使用固定种子保证结果可复现
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// NewRandomSource 创建随机数来源
// seed 为 0 时使用当前时间作为种子
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Between 返回 [min, max] 闭区间内的随机整数
// min > max 时交换两者
func Between(rng RandomSource, min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + rng.Intn(max-min+1)
}

// Chance 以概率 p 返回 true
func Chance(rng RandomSource, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}
