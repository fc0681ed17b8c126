package Stacks

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tOpN       = 20000
	tValRange  = 1 << 20
	tPushRatio = 3 // one in tPushRatio operations pops.
)

func TestArrayStack_Empty(t *testing.T) {
	st := MakeArrayStack[int](0)
	assert.True(t, st.Empty())
	assert.Zero(t, st.Size())

	v, err := st.Pop()
	assert.Zero(t, v)
	var ese *EmptyStackError
	require.True(t, errors.As(err, &ese))
	assert.Equal(t, "Pop", ese.Op)

	v, err = st.Top()
	assert.Zero(t, v)
	require.True(t, errors.As(err, &ese))
	assert.Equal(t, "Top", ese.Op)
	assert.Equal(t, "Stack is Empty: cannot Top.", err.Error())
}

func TestArrayStack_LIFO(t *testing.T) {
	st := MakeArrayStack[string](2)
	for _, s := range []string{"a", "b", "c"} {
		st.Push(s)
	}
	assert.EqualValues(t, 3, st.Size())

	top, err := st.Top()
	require.NoError(t, err)
	assert.Equal(t, "c", top)
	assert.EqualValues(t, 3, st.Size(), "Top must not remove")

	for _, want := range []string{"c", "b", "a"} {
		got, err := st.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, st.Empty())
}

func TestArrayStack_ClearShrink(t *testing.T) {
	st := MakeArrayStack[*int](0)
	for i := range 100 {
		st.Push(&i)
	}
	st.Clear()
	assert.True(t, st.Empty())
	_, err := st.Pop()
	assert.Error(t, err)

	st.Push(nil)
	st.Shrink()
	assert.EqualValues(t, 1, st.Size())
	v, err := st.Pop()
	require.NoError(t, err)
	assert.Nil(t, v)
}

// random push/pop sequences checked against gods' arraystack.
func TestArrayStack_Oracle(t *testing.T) {
	st := MakeArrayStack[int](1)
	oracle := arraystack.New()
	for range tOpN {
		if rg.Intn(tPushRatio) == 0 {
			want, ok := oracle.Pop()
			got, err := st.Pop()
			if !ok {
				assert.Error(t, err)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, want.(int), got)
		} else {
			v := rg.Intn(tValRange)
			oracle.Push(v)
			st.Push(v)
		}
		assert.EqualValues(t, oracle.Size(), st.Size())
		if want, ok := oracle.Peek(); ok {
			got, err := st.Top()
			require.NoError(t, err)
			assert.Equal(t, want.(int), got)
		}
	}
}

func BenchmarkArrayStack_PushPop(b *testing.B) {
	st := MakeArrayStack[int](0)
	for range b.N {
		for i := range 1024 {
			st.Push(i)
		}
		for !st.Empty() {
			_, _ = st.Pop()
		}
	}
}
