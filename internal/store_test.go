package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	st := newStore(0)
	require.Equal(t, 0, st.Top())

	_, err := st.Get(0)
	require.ErrorIs(t, err, ErrAddressFault)

	st, err = st.set(3, 42)
	require.NoError(t, err)
	require.Equal(t, 4, st.Top())

	v, err := st.Get(3)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	// Slots below the high-water mark are not written by a write above them
	_, err = st.Get(1)
	require.ErrorIs(t, err, ErrAddressFault)

	_, err = st.set(-1, 0)
	require.ErrorIs(t, err, ErrAddressFault)
	_, err = st.Get(-1)
	require.ErrorIs(t, err, ErrAddressFault)

	st, err = st.initRange(4, 3)
	require.NoError(t, err)
	require.Equal(t, 7, st.Top())
	for addr := 4; addr < 7; addr++ {
		v, err := st.Get(addr)
		require.NoError(t, err)
		require.Equal(t, uninitialized, v)
	}
}

func TestStoreSparse(t *testing.T) {
	st := newStore(0)
	st, err := st.set(1<<40, 5)
	require.NoError(t, err)
	require.Equal(t, 1<<40+1, st.Top())
	require.Len(t, st.cells, 1)

	v, err := st.Get(1 << 40)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = st.Get(1<<40 - 1)
	require.ErrorIs(t, err, ErrAddressFault)

	st, _ = st.set(2, 1)
	require.Equal(t, 1<<40+1, st.Top(), "a lower write leaves the high-water mark")

	out := &strings.Builder{}
	require.NoError(t, st.Dump(out))
	require.Equal(t, "2: 1\n1099511627776: 5\n", out.String())
}

func TestStoreLimitCheck(t *testing.T) {
	st := newStore(2)
	st, err := st.set(1, 1)
	require.NoError(t, err)

	_, err = st.set(2, 1)
	require.ErrorIs(t, err, ErrStoreExhausted)

	_, err = st.initRange(0, 3)
	require.ErrorIs(t, err, ErrStoreExhausted)
}

func TestStoreDump(t *testing.T) {
	st := newStore(0)
	st, _ = st.set(0, unbound)
	st, _ = st.set(2, 7)

	out := &strings.Builder{}
	require.NoError(t, st.Dump(out))
	require.Equal(t, "0: -1\n2: 7\n", out.String())
}

func recoverRuntimeError(f func()) (err *RuntimeError) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(*RuntimeError)
		}
	}()
	f()
	return nil
}

func TestEnv(t *testing.T) {
	name := func(lexeme string) *token {
		return &token{token: tkIdentifier, lexeme: lexeme, line: 3}
	}

	global := newEnv(0).extend("x", 0).extend("y", 1)
	require.Equal(t, 2, global.nextloc)

	inner := global.extend("x", 5)
	require.Equal(t, 5, inner.lookup(name("x")))
	require.Equal(t, 1, inner.lookup(name("y")))
	require.Equal(t, 6, inner.nextloc)

	// extend leaves the receiver untouched
	require.Equal(t, 0, global.lookup(name("x")))
	require.Equal(t, 2, global.nextloc)

	// nextloc never moves down
	require.Equal(t, 6, inner.extend("z", 2).nextloc)

	err := recoverRuntimeError(func() { global.lookup(name("z")) })
	require.NotNil(t, err)
	require.ErrorIs(t, err, ErrNameNotFound)
	require.Equal(t, "z", err.Lexeme)
	require.Equal(t, 3, err.Line)

	require.NotNil(t, recoverRuntimeError(func() { newEnv(0).lookup(name("x")) }))
}
