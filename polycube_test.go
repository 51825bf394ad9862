package polycube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	polycube "github.com/katalvlaran/polycube"
)

func TestGenerate_FacadeMatchesKnownCount(t *testing.T) {
	shapes, err := polycube.Generate(4)
	assert.NoError(t, err)
	assert.Len(t, shapes, 8)
}

func TestGenerate_FacadeRejectsInvalidSize(t *testing.T) {
	_, err := polycube.Generate(0)
	assert.Error(t, err)
}
