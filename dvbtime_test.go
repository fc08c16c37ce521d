package tscodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBufferMJDTime(t *testing.T) {
	// Reference example of the annex: MJD 0xC079 is 1993-10-13
	ref := time.Date(1993, time.October, 13, 12, 45, 0, 0, time.UTC)

	b := NewBuffer(8)
	assert.NoError(t, b.PutMJDTime(ref))
	assert.Equal(t, []byte{0xc0, 0x79, 0x12, 0x45, 0x00}, b.Data()[:5])
	assert.Equal(t, ref, b.GetMJDTime())
	assert.NoError(t, b.Err())
}

func TestBufferMJDTimeRoundTrip(t *testing.T) {
	b := NewBuffer(64)
	times := []time.Time{
		time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 24, 23, 59, 59, 0, time.UTC),
		time.Date(1999, time.December, 31, 6, 30, 15, 0, time.UTC),
	}
	for _, tm := range times {
		assert.NoError(t, b.PutMJDTime(tm))
	}
	for _, tm := range times {
		assert.Equal(t, tm, b.GetMJDTime(), tm.String())
	}
	assert.NoError(t, b.Err())
}

func TestBufferMJDTimeUnderflow(t *testing.T) {
	b := NewReadOnlyBuffer([]byte{0xc0, 0x79, 0x12})
	assert.True(t, b.GetMJDTime().IsZero())
	assert.True(t, b.ReadError())
}

func TestBufferBCDDurations(t *testing.T) {
	b := NewBuffer(16)
	assert.NoError(t, b.PutBCDDurationMinutes(2*time.Hour+30*time.Minute))
	assert.Equal(t, []byte{0x02, 0x30}, b.Data()[:2])
	assert.Equal(t, 2*time.Hour+30*time.Minute, b.GetBCDDurationMinutes())

	assert.NoError(t, b.PutBCDDurationSeconds(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b.Data()[2:5])
	assert.Equal(t, time.Hour+2*time.Minute+3*time.Second, b.GetBCDDurationSeconds())
	assert.NoError(t, b.Err())
}
