// Package qr кодирует строку в PNG изображение QR-кода в виде data-URI.
//
// Генерация выполняется по принципу "best effort": Encoder никогда не возвращает ошибку,
// вместо этого возвращается пустой Image, у которого Available() == false.
package qr

import (
	"encoding/base64"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	DataURIPrefix = "data:image/png;base64," // Префикс data-URI для PNG
	DefaultSize   = 256                      // Размер стороны изображения в пикселях по умолчанию
)

// Image результат кодирования. Нулевое значение означает, что изображение недоступно.
type Image struct {
	dataURI string
}

// Available сообщает, было ли изображение сгенерировано.
func (i Image) Available() bool {
	return i.dataURI != ""
}

// DataURI возвращает `data:image/png;base64,...` или пустую строку, если изображение недоступно.
func (i Image) DataURI() string {
	return i.dataURI
}

// FromDataURI восстанавливает Image из сохраненного data-URI.
func FromDataURI(s string) Image {
	if !strings.HasPrefix(s, DataURIPrefix) {
		return Image{}
	}
	return Image{dataURI: s}
}

// Encoder генерирует QR-коды с уровнем коррекции ошибок Low и рамкой (quiet zone).
type Encoder struct {
	size   int
	logger *zap.Logger
}

// NewEncoder создает новый экземпляр Encoder.
//
// Параметры:
//   - size: размер стороны изображения в пикселях, при size <= 0 используется DefaultSize
//   - logger: логгер для записи ошибок кодирования
//
// Возвращает:
//   - *Encoder: новый экземпляр
func NewEncoder(size int, logger *zap.Logger) *Encoder {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Encoder{
		size:   size,
		logger: logger.Named("qr"),
	}
}

// Encode кодирует content в QR-код. Ошибки не возвращаются, а только логируются.
func (e *Encoder) Encode(content string) Image {
	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		e.logger.Warn("qr encode failed", zap.Error(err), zap.Int("content_len", len(content)))
		return Image{}
	}
	code.DisableBorder = false

	png, err := code.PNG(e.size)
	if err != nil {
		e.logger.Warn("qr png render failed", zap.Error(err))
		return Image{}
	}
	return Image{dataURI: DataURIPrefix + base64.StdEncoding.EncodeToString(png)}
}
