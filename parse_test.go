package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChildren_MasterSizeMustMatch(t *testing.T) {
	// Info master whose declared size is one byte short of its child's
	// total size: the child (Title) itself is well-formed, but its
	// total size no longer fits the truncated parent budget.
	title := encString(idTitle, "x")
	buf := append([]byte{}, title...)
	buf = buf[:len(buf)-1] // truncate the parent's data window

	s, err := newSource(bytes.NewReader(buf))
	require.NoError(t, err)
	_, err = parseChildren(s, uint64(len(buf)), false, 0, defaultConfig().parseOptions)
	require.Error(t, err)
}

func TestParseChildren_UnknownIDDefaultsToBinary(t *testing.T) {
	unknown := encElem(0x4999, []byte("hi"))
	s, err := newSource(bytes.NewReader(unknown))
	require.NoError(t, err)
	els, err := parseChildren(s, uint64(len(unknown)), false, 0, defaultConfig().parseOptions)
	require.NoError(t, err)
	require.Len(t, els, 1)
	require.Equal(t, kindBinary, els[0].k)
	require.Equal(t, []byte("hi"), els[0].raw)
}

func TestParseChildren_DepthLimit(t *testing.T) {
	// Nest a Tag master inside itself repeatedly to exceed maxDepth.
	inner := encString(idTagName, "leaf")
	for i := 0; i < 20; i++ {
		inner = encMaster(idTag, inner)
	}
	s, err := newSource(bytes.NewReader(inner))
	require.NoError(t, err)
	opts := defaultConfig().parseOptions
	opts.maxDepth = 16
	_, err = parseChildren(s, uint64(len(inner)), false, 0, opts)
	require.Error(t, err)
	var me *Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, KindCorruptFile, me.Kind)
}

func TestValidateBody(t *testing.T) {
	cases := []struct {
		name    string
		k       kind
		body    []byte
		strict  bool
		wantErr Kind
	}{
		{name: "float width 3 invalid", k: kindFloat, body: []byte{1, 2, 3}, wantErr: KindInvalidFloat},
		{name: "date width 7 invalid", k: kindDate, body: make([]byte, 7), wantErr: KindInvalidDate},
		{name: "int width 9 invalid", k: kindInt, body: make([]byte, 9), wantErr: KindInvalidInt},
		{name: "utf8 invalid bytes", k: kindUTF8, body: []byte{0xff, 0xfe}, wantErr: KindInvalidUTF8},
		{name: "lenient string accepts utf8", k: kindString, body: []byte("café"), strict: false},
		{name: "strict ascii rejects non-ascii", k: kindString, body: []byte("café"), strict: true, wantErr: KindInvalidUTF8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBody(0x1234, tc.k, tc.body, tc.strict)
			if tc.wantErr != 0 {
				require.Error(t, err)
				var me *Error
				require.ErrorAs(t, err, &me)
				require.Equal(t, tc.wantErr, me.Kind)
				return
			}
			require.NoError(t, err)
		})
	}
}
