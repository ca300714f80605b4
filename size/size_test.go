package size_test

import (
	"bytes"
	"container/list"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-backport/size"
)

type bag struct{ items []string }

func (b bag) Size() int { return len(b.items) }

type broken struct{}

func (broken) Size() int { return -1 }
func (broken) Len() int  { return -3 }

type ids []int

type name string

func TestOf(t *testing.T) {
	assert.Equal(t, uint(0), size.Of(bag{}))
	assert.Equal(t, uint(3), size.Of(bag{items: []string{"a", "b", "c"}}))
}

func TestLen(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("hello")
	assert.Equal(t, uint(5), size.Len(&buf))

	var sb strings.Builder
	assert.Equal(t, uint(0), size.Len(&sb))

	l := list.New()
	l.PushBack(1)
	l.PushBack(2)
	assert.Equal(t, uint(2), size.Len(l))
}

func TestNegativeCountIsZero(t *testing.T) {
	assert.Equal(t, uint(0), size.Of(broken{}))
	assert.Equal(t, uint(0), size.Len(broken{}))
}

func TestSliceStringMap(t *testing.T) {
	tests := []struct {
		name string
		got  uint
		want uint
	}{
		{"slice", size.Slice([]int{1, 2, 3}), 3},
		{"nil slice", size.Slice([]int(nil)), 0},
		{"named slice", size.Slice(ids{4, 5}), 2},
		{"string", size.String("héllo"), 6},
		{"named string", size.String(name("abc")), 3},
		{"map", size.Map(map[string]int{"a": 1, "b": 2}), 2},
		{"nil map", size.Map(map[int]bool(nil)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestArray(t *testing.T) {
	assert.Equal(t, uint(4), size.Array(&[4]byte{}))
	assert.Equal(t, uint(0), size.Array(&[0]string{}))
	assert.Equal(t, uint(16), size.Array[[16]int](nil))

	// The builtin agrees and is a constant.
	const n = len([7]int{})
	assert.Equal(t, uint(n), size.Array(&[n]int{}))
}

func TestArrayRejectsNonArray(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, size.ErrNotArray)
	}()
	size.Array(&[]int{1})
}
