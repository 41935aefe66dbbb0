package utils

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const runIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRunID gera o identificador curto de uma execução da sincronização.
// Se o gerador falhar, usa o horário atual.
func GenerateRunID() string {
	id, err := gonanoid.Generate(runIDAlphabet, 10)
	if err != nil {
		return time.Now().UTC().Format("20060102T150405")
	}
	return id
}
