// Package sequence holds the cosmetic side of business numbering: fixed
// prefixes, time buckets and zero-padded formatting. The atomic counter
// itself lives in the repository layer; everything here is pure.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rentamaq-backend/internal/domain"
)

// suffixWidth keeps identifiers fixed-width so lexicographic order equals
// numeric order within a bucket.
const suffixWidth = 4

// Prefix returns the literal prefix of a category, dash included.
func Prefix(cat domain.SequenceCategory) string {
	switch cat {
	case domain.SequencePayment:
		return "PAG-"
	case domain.SequenceEquipment:
		return "EQ-"
	default:
		return "ARR-"
	}
}

// Bucket derives the time bucket for a category: contracts and payments
// restart monthly (YYYYMM), equipment codes yearly (YYYY).
func Bucket(cat domain.SequenceCategory, now time.Time) string {
	if cat == domain.SequenceEquipment {
		return now.Format("2006")
	}
	return now.Format("200601")
}

// Format builds the full identifier, e.g. ARR-202501-0001.
func Format(cat domain.SequenceCategory, bucket string, n int32) string {
	return fmt.Sprintf("%s%s-%0*d", Prefix(cat), bucket, suffixWidth, n)
}

// ParseSuffix extracts the trailing numeric suffix of an issued identifier.
// Returns false when the identifier does not end in a number, in which case
// the series restarts at 1.
func ParseSuffix(identifier string) (int32, bool) {
	idx := strings.LastIndex(identifier, "-")
	if idx < 0 || idx == len(identifier)-1 {
		return 0, false
	}
	n, err := strconv.ParseInt(identifier[idx+1:], 10, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return int32(n), true
}
