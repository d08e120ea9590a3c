package store

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(setupTestDB(t), zap.NewNop(), 5, nil, nil)

	assert.Equal(t, "store", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))

	assert.False(t, NewFeature(nil, zap.NewNop(), 5, nil, nil).IsEnabled())
}
