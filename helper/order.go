package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber builds "ORD<unix millis><5 random chars>", e.g. ORD1760450000123A1B2C.
func GenerateOrderNumber(now time.Time) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:5]
	return strings.ToUpper(fmt.Sprintf("ORD%d%s", now.UnixMilli(), token))
}
