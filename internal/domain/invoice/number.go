package invoice

import (
	"fmt"
	"hash/fnv"
)

// GenerateNumber builds a default invoice number of the form INV-yyyyMMdd-NNNN.
// The four digit suffix is derived from seed so the same input always yields
// the same number.
func GenerateNumber(date Date, seed string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	suffix := 1000 + h.Sum32()%9000
	return fmt.Sprintf("INV-%s-%d", date.Format("20060102"), suffix)
}
