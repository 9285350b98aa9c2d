package tracking_number

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"shipment-service/internal/entities"
)

const (
	suffixLength = 6
	// без 0/O и 1/I, чтобы номер можно было продиктовать
	alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var carrierPrefixes = map[entities.Carrier]string{
	entities.CarrierDHL:      "DHL",
	entities.CarrierBlueDart: "BD",
	entities.CarrierFedEx:    "FDX",
	entities.CarrierDTDC:     "DTDC",
}

// Factory генерирует номера вида <префикс перевозчика><UTC yyyymmddhhmmss><случайный суффикс>.
// Уникальность проверяется вставкой в базу, при коллизии номер генерируется заново.
type Factory struct {
	now func() time.Time
}

func New() *Factory {
	return &Factory{
		now: time.Now,
	}
}

func (f *Factory) GenerateTrackingNumber(carrier entities.Carrier) (string, error) {
	prefix, ok := carrierPrefixes[carrier]
	if !ok {
		return "", fmt.Errorf("no tracking prefix for carrier %q", carrier)
	}

	suffix, err := randomSuffix(suffixLength)
	if err != nil {
		return "", fmt.Errorf("random suffix: %w", err)
	}

	var b strings.Builder
	b.Grow(len(prefix) + 14 + suffixLength)
	b.WriteString(prefix)
	b.WriteString(f.now().UTC().Format("20060102150405"))
	b.WriteString(suffix)
	return b.String(), nil
}

func randomSuffix(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf), nil
}
