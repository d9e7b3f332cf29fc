package subtitle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(start, end time.Duration, text string) Entry {
	return Entry{Start: start, End: end, Content: []string{text}}
}

func TestMergeLengthAndOrder(t *testing.T) {
	a := []Entry{
		entry(1*time.Second, 2*time.Second, "a1"),
		entry(5*time.Second, 6*time.Second, "a2"),
	}
	b := []Entry{
		entry(3*time.Second, 4*time.Second, "b1"),
		entry(2*time.Second, 3*time.Second, "b2"), // internally out of order
	}

	out := Merge(a, b)

	require.Len(t, out, len(a)+len(b))
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Start, out[i].Start)
	}
	for i, e := range out {
		assert.Equal(t, i+1, e.Index)
	}
	assert.Equal(t, []string{"a1", "b2", "b1", "a2"},
		[]string{out[0].Text(), out[1].Text(), out[2].Text(), out[3].Text()})
}

func TestMergeTieBreakByArrivalOrder(t *testing.T) {
	a := []Entry{entry(time.Second, 2*time.Second, "first stream")}
	b := []Entry{entry(time.Second, 2*time.Second, "second stream")}

	out := Merge(a, b)

	require.Len(t, out, 2)
	assert.Equal(t, "first stream", out[0].Text())
	assert.Equal(t, "second stream", out[1].Text())
}

func TestMergeEmptyInputs(t *testing.T) {
	a := []Entry{entry(time.Second, 2*time.Second, "only")}

	assert.Len(t, Merge(nil, a, nil), 1)
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, []Entry{}))
}

// Two streams describing the same moment: the second is styled and shifted
// +1ms so it lands deterministically after the first.
func TestMergeStyledAndShiftedStreams(t *testing.T) {
	subsA := []Entry{entry(time.Second, 2*time.Second, "Hei")}
	subsB := []Entry{entry(time.Second, 2*time.Second, "Hi")}

	out := Merge(subsA, TimeShift(Style(subsB, "#87cefa"), time.Millisecond))

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Index)
	assert.Equal(t, "Hei", out[0].Text())
	assert.Equal(t, 2, out[1].Index)
	assert.Equal(t, `<font color="#87cefa">Hi</font>`, out[1].Text())
	assert.Equal(t, time.Second+time.Millisecond, out[1].Start)
}

// A -1ms shift on a stream that starts at zero pushes its first entry
// before the stream start. The composed file must still round-trip: the
// timestamp clamps to 00:00:00,000 instead of rendering a negative that
// Parse would reject on the next run.
func TestMergeShiftedBeforeZeroRoundTrips(t *testing.T) {
	subsA := []Entry{entry(0, time.Second, "Hei")}
	subsB := []Entry{entry(0, time.Second, "Hi")}

	out := Merge(subsA, TimeShift(Style(subsB, "#87cefa"), -time.Millisecond))
	composed := Compose(out)
	assert.Contains(t, composed, "00:00:00,000 --> 00:00:00,999")

	again, err := ParseString(composed)
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, `<font color="#87cefa">Hi</font>`, again[0].Text())
	assert.Equal(t, time.Duration(0), again[0].Start)
}
