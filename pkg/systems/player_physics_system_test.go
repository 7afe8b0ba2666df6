package systems

import (
	"testing"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/entities"
)

func TestPlayerPhysicsSystem_GravityIntegration(t *testing.T) {
	em, state := newTestWorld(t, nil)
	ps := NewPlayerPhysicsSystem(em, state)

	playerID, err := entities.NewPlayerEntity(em, state.Config)
	if err != nil {
		t.Fatal(err)
	}

	ps.Update(0.1)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, playerID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)

	// vy = 0 + 1000*0.1 = 100；y = 360 + 100*0.1 = 370
	if !approxEqual(vel.VY, 100) {
		t.Errorf("VY = %v, want 100", vel.VY)
	}
	if !approxEqual(pos.Y, 370) {
		t.Errorf("Y = %v, want 370", pos.Y)
	}
	if !approxEqual(pos.X, 320) {
		t.Errorf("X = %v, want 320 (no horizontal motion)", pos.X)
	}
}

func TestPlayerPhysicsSystem_WorldBounds(t *testing.T) {
	tests := []struct {
		name        string
		startY      float64
		startVY     float64
		wantY       float64
		wantBlocked func(b *components.BodyComponent) bool
	}{
		{
			name:        "落到地面",
			startY:      715,
			startVY:     300,
			wantY:       720,
			wantBlocked: func(b *components.BodyComponent) bool { return b.BlockedDown },
		},
		{
			name:        "撞到顶部",
			startY:      5,
			startVY:     -400,
			wantY:       0,
			wantBlocked: func(b *components.BodyComponent) bool { return b.BlockedUp },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, state := newTestWorld(t, nil)
			ps := NewPlayerPhysicsSystem(em, state)
			playerID, _ := entities.NewPlayerEntity(em, state.Config)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, playerID)
			body, _ := ecs.GetComponent[*components.BodyComponent](em, playerID)
			pos.Y = tt.startY
			vel.VY = tt.startVY

			ps.Update(frameDelta)

			if pos.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", pos.Y, tt.wantY)
			}
			if vel.VY != 0 {
				t.Errorf("VY = %v, want 0 after clamping", vel.VY)
			}
			if !tt.wantBlocked(body) {
				t.Error("blocked flag not set")
			}
		})
	}
}

func TestPlayerPhysicsSystem_StaysWithinBounds(t *testing.T) {
	em, state := newTestWorld(t, nil)
	ps := NewPlayerPhysicsSystem(em, state)
	playerID, _ := entities.NewPlayerEntity(em, state.Config)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)

	for frame := 0; frame < 600; frame++ {
		if frame%7 == 0 {
			ps.Jump(playerID)
		}
		ps.Update(frameDelta)
		if pos.Y < 0 || pos.Y > state.Height {
			t.Fatalf("frame %d: Y = %v out of [0, %v]", frame, pos.Y, state.Height)
		}
	}
}

func TestPlayerPhysicsSystem_Jump(t *testing.T) {
	em, state := newTestWorld(t, nil)
	ps := NewPlayerPhysicsSystem(em, state)
	playerID, _ := entities.NewPlayerEntity(em, state.Config)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, playerID)

	vel.VY = 250
	ps.Jump(playerID)
	if vel.VY != -400 {
		t.Errorf("VY after Jump = %v, want -400", vel.VY)
	}

	// 空中再次跳跃同样生效
	ps.Update(frameDelta)
	ps.Jump(playerID)
	if vel.VY != -400 {
		t.Errorf("VY after mid-air Jump = %v, want -400", vel.VY)
	}

	// 非玩家实体忽略
	other := em.CreateEntity()
	ps.Jump(other)
}
