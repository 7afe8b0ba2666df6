package ecs

import (
	"reflect"
	"testing"
)

func TestGenericAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1, Y: 2})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Component data mismatch, expected (1, 2), got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型与反射版本共享同一存储
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Reflection lookup should see component added by generic API")
	}
}

func TestGenericGetComponent_NotFound(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
	if _, ok := GetComponent[*testVelocityComponent](em, id+1); ok {
		t.Error("Unknown entity should not yield a component")
	}
}

func TestGenericRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testVelocityComponent{VX: 3})

	if !HasComponent[*testVelocityComponent](em, id) {
		t.Fatal("Should have component after adding")
	}
	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Should not have component after removal")
	}
}

func TestGenericGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with Position, got %d", len(got))
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != 1 || got[0] != id1 {
		t.Errorf("Expected only id1 with Position+Velocity, got %v", got)
	}
}

func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 64; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
