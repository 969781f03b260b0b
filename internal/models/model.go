package models

import "fmt"

// Model names one of the two pace-figure models.
type Model string

const (
	ShakeUpModel  Model = "shakeup"
	BrohamerModel Model = "brohamer"
)

// ParseModel validates a model name.
func ParseModel(name string) (Model, error) {
	switch Model(name) {
	case ShakeUpModel, BrohamerModel:
		return Model(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}
