package subtitle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleWrapsEachLine(t *testing.T) {
	in := []Entry{{
		Start:   time.Second,
		End:     2 * time.Second,
		Content: []string{"one", "two"},
	}}

	out := Style(in, "#87cefa")

	require.Len(t, out, 1)
	assert.Equal(t, []string{
		`<font color="#87cefa">one</font>`,
		`<font color="#87cefa">two</font>`,
	}, out[0].Content)

	// input untouched
	assert.Equal(t, []string{"one", "two"}, in[0].Content)
}

func TestTimeShiftInvertible(t *testing.T) {
	in := []Entry{
		{Start: time.Second, End: 2 * time.Second, Content: []string{"a"}},
		{Start: 3 * time.Second, End: 4 * time.Second, Content: []string{"b"}},
	}

	shifted := TimeShift(in, time.Millisecond)
	assert.Equal(t, time.Second+time.Millisecond, shifted[0].Start)
	assert.Equal(t, 2*time.Second+time.Millisecond, shifted[0].End)

	back := TimeShift(shifted, -time.Millisecond)
	assert.Equal(t, in, back)
}

func TestTimeShiftDoesNotAliasInput(t *testing.T) {
	in := []Entry{{Start: time.Second, End: 2 * time.Second, Content: []string{"a"}}}

	out := TimeShift(in, time.Millisecond)
	out[0].Content[0] = "mutated"

	assert.Equal(t, "a", in[0].Content[0])
	assert.Equal(t, time.Second, in[0].Start)
}

func TestCollapseNewlines(t *testing.T) {
	in := []Entry{
		{Content: []string{"line one", "line two"}},
		{Content: []string{"solo"}},
	}

	out := CollapseNewlines(in)

	assert.Equal(t, []string{"line one line two"}, out[0].Content)
	assert.Equal(t, []string{"solo"}, out[1].Content)
	assert.Equal(t, []string{"line one", "line two"}, in[0].Content)
}
