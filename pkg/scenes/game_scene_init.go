package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/pigeonrun/pkg/entities"
)

// OnInit 创建场景中的全部实体
//
// 创建顺序决定实体ID，也就决定了各系统的遍历顺序：
// 背景层 → 阴影 → 玩家 → 障碍物。
func (s *GameScene) OnInit() error {
	if s.initialized {
		return fmt.Errorf("game scene already initialized")
	}

	cfg := s.state.Config

	layerIDs, err := entities.NewBackgroundLayerEntities(s.entityManager, cfg)
	if err != nil {
		return fmt.Errorf("failed to create background layers: %w", err)
	}
	s.layerIDs = layerIDs

	s.shadowID, err = entities.NewShadowEntity(s.entityManager, cfg)
	if err != nil {
		return fmt.Errorf("failed to create shadow: %w", err)
	}

	s.playerID, err = entities.NewPlayerEntity(s.entityManager, cfg)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	s.obstacleIDs, err = s.obstaclePoolSystem.SpawnInitial()
	if err != nil {
		return fmt.Errorf("failed to spawn obstacles: %w", err)
	}

	s.initialized = true
	log.Printf("[GameScene] 初始化完成: 世界 %.0fx%.0f, %d 个障碍物, 眩晕策略 %s",
		s.state.Width, s.state.Height, len(s.obstacleIDs), cfg.Stun.Retrigger)
	return nil
}
