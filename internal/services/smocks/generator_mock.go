package smocks

import (
	"github.com/stretchr/testify/mock"
)

// GeneratorMock выдает заранее заданные коды, чтобы воспроизводить коллизии.
type GeneratorMock struct {
	mock.Mock
}

func (g *GeneratorMock) Generate(length int) (string, error) {
	args := g.Called(length)
	return args.String(0), args.Error(1) //nolint:wrapcheck
}
