package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// loadedImage son los bytes de una imagen opcional junto con la extensión
// que espera maroto.
type loadedImage struct {
	data []byte
	ext  extension.Type
}

// loadImage lee una imagen opcional del filesystem. Nunca es fatal para el
// documento: con ruta vacía devuelve (nil, ""); si el archivo es ilegible o
// el formato no se reconoce devuelve (nil, razón) y el caller omite la
// imagen dejando constancia en el log.
func loadImage(path string) (*loadedImage, string) {
	if path == "" {
		return nil, ""
	}
	ext, ok := imageExtension(path)
	if !ok {
		return nil, fmt.Sprintf("formato de imagen no soportado: %q", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err.Error()
	}
	if len(data) == 0 {
		return nil, "archivo de imagen vacío"
	}
	return &loadedImage{data: data, ext: ext}, ""
}

func imageExtension(path string) (extension.Type, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return extension.Png, true
	case ".jpg", ".jpeg":
		return extension.Jpg, true
	}
	return "", false
}
