package scene

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
)

// SpawnSprite creates a sprite entity and registers it in the scene.
func (s *Scene) SpawnSprite(pos core.Position, w, h float64, handle core.SpriteHandle) (*entity.Sprite, error) {
	sp, err := entity.NewSprite(pos, w, h, handle)
	if err != nil {
		return nil, err
	}
	s.Add(sp)
	return sp, nil
}

// SpawnKinematic creates a kinematic entity and registers it in the
// scene.
func (s *Scene) SpawnKinematic(pos core.Position, w, h float64, vel core.Velocity, policies ...core.Policy) (*entity.Kinematic, error) {
	k, err := entity.NewKinematic(pos, w, h, vel, policies...)
	if err != nil {
		return nil, err
	}
	s.Add(k)
	return k, nil
}

// SpawnText creates a text entity and registers it in the scene.
func (s *Scene) SpawnText(pos core.Position, content string, style core.Style) *entity.Text {
	t := entity.NewText(pos, content, style)
	s.Add(t)
	return t
}
