package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrNoOutputPath  = errors.New("ruta de salida vacía")
	ErrRenderFailed  = errors.New("fallo al generar el documento")
	ErrWriteArtifact = errors.New("fallo al escribir el archivo de salida")
)
