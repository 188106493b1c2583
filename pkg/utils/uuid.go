package utils

import (
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// MustGenerateID gera um ID curto e recorre a um UUID caso o gerador falhe
func MustGenerateID() string {
	id, err := GenerateID()
	if err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	}
	return id
}

// UniqueFileName gera um nome único (uuid em hexadecimal) mantendo a extensão
func UniqueFileName(extension string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + extension
}
