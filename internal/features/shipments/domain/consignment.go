package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// ConsignmentPrefix starts every generated consignment number.
const ConsignmentPrefix = "MT-"

// NormalizeConsignmentNo trims surrounding whitespace. Matching stays case-sensitive.
func NormalizeConsignmentNo(raw string) string {
	return strings.TrimSpace(raw)
}

// NewConsignmentNo generates a number shaped MT-YYYYMM### for the month of now.
func NewConsignmentNo(now time.Time) string {
	return fmt.Sprintf("%s%04d%02d%03d", ConsignmentPrefix, now.Year(), int(now.Month()), rand.IntN(1000))
}
