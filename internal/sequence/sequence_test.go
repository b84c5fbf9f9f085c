package sequence

import (
	"testing"
	"time"

	"rentamaq-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "ARR-", Prefix(domain.SequenceContract))
	assert.Equal(t, "PAG-", Prefix(domain.SequencePayment))
	assert.Equal(t, "EQ-", Prefix(domain.SequenceEquipment))
}

func TestBucket(t *testing.T) {
	jan := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "202501", Bucket(domain.SequenceContract, jan))
	assert.Equal(t, "202501", Bucket(domain.SequencePayment, jan))
	assert.Equal(t, "2025", Bucket(domain.SequenceEquipment, jan))

	// Suffixes restart per bucket: December and January never share one.
	dec := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)
	assert.NotEqual(t, Bucket(domain.SequenceContract, dec), Bucket(domain.SequenceContract, jan))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "ARR-202501-0001", Format(domain.SequenceContract, "202501", 1))
	assert.Equal(t, "PAG-202501-0099", Format(domain.SequencePayment, "202501", 99))
	assert.Equal(t, "EQ-2025-0042", Format(domain.SequenceEquipment, "2025", 42))
	// Width holds four digits; beyond that the number keeps growing.
	assert.Equal(t, "ARR-202501-12345", Format(domain.SequenceContract, "202501", 12345))
}

func TestFormatLexicographicOrder(t *testing.T) {
	// Zero padding keeps lexicographic order equal to numeric order, which
	// the max-scan seeding depends on.
	prev := Format(domain.SequenceContract, "202501", 1)
	for n := int32(2); n <= 120; n++ {
		cur := Format(domain.SequenceContract, "202501", n)
		assert.Less(t, prev, cur)
		prev = cur
	}
}

func TestParseSuffix(t *testing.T) {
	n, ok := ParseSuffix("ARR-202501-0099")
	assert.True(t, ok)
	assert.Equal(t, int32(99), n)

	n, ok = ParseSuffix("EQ-2025-0001")
	assert.True(t, ok)
	assert.Equal(t, int32(1), n)

	for _, bad := range []string{"", "ARR-202501-", "ARR-202501-XX", "sin-guion-final-abc", "ARR202501"} {
		_, ok := ParseSuffix(bad)
		assert.False(t, ok, "expected %q to fail", bad)
	}
}
