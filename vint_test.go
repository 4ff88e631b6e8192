package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadVIntID(t *testing.T) {
	cases := []struct {
		name    string
		in      []byte
		want    uint32
		wantErr Kind
	}{
		{name: "one byte", in: []byte{0xE0}, want: 0xE0},
		{name: "two byte", in: []byte{0x4D, 0xBB}, want: 0x4DBB},
		{name: "four byte", in: []byte{0x18, 0x53, 0x80, 0x67}, want: 0x18538067},
		{name: "width 5 is invalid", in: []byte{0x08, 0, 0, 0, 0}, wantErr: KindInvalidID},
		{name: "zero first byte is invalid", in: []byte{0x00}, wantErr: KindInvalidID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := newSource(bytes.NewReader(tc.in))
			require.NoError(t, err)
			got, err := s.readVIntID()
			if tc.wantErr != 0 {
				require.Error(t, err)
				var me *Error
				require.ErrorAs(t, err, &me)
				require.Equal(t, tc.wantErr, me.Kind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReadVIntSize(t *testing.T) {
	cases := []struct {
		name    string
		in      []byte
		want    uint64
		wantErr Kind
	}{
		{name: "one byte", in: []byte{0x82}, want: 2},
		{name: "eight byte", in: []byte{0x01, 0, 0, 0, 0, 0, 0, 5}, want: 5},
		{name: "width 9 is invalid", in: []byte{0x00, 0, 0, 0, 0, 0, 0, 0, 0}, wantErr: KindInvalidSize},
		{name: "unknown size sentinel", in: []byte{0xFF}, wantErr: KindCorruptFile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := newSource(bytes.NewReader(tc.in))
			require.NoError(t, err)
			got, err := s.readVIntSize()
			if tc.wantErr != 0 {
				require.Error(t, err)
				var me *Error
				require.ErrorAs(t, err, &me)
				require.Equal(t, tc.wantErr, me.Kind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
