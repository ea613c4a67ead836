package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador das entidades persistidas
func GenerateID() string {
	return uuid.NewString()
}

// GenerateNonce gera um valor aleatório usado no state do OAuth
func GenerateNonce() (string, error) {
	return gonanoid.Generate(characters, 32)
}
