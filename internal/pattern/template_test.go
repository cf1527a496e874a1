package pattern

import (
	"testing"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileTemplate(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		anchor  Anchor
		wantLen int
		wantErr bool
	}{
		{name: "full block", src: "XY ABAB CDCD", anchor: AnchorFull, wantLen: 10},
		{name: "literal digits", src: "XY A0 B0 C0 D0", anchor: AnchorFull, wantLen: 10},
		{name: "ending", src: "XXXX", anchor: AnchorEnd, wantLen: 4},
		{name: "interior", src: "XY XY XY", anchor: AnchorInterior, wantLen: 6},
		{name: "full too short", src: "ABC", anchor: AnchorFull, wantErr: true},
		{name: "too long", src: "ABCDEFGHIJK", anchor: AnchorAnywhere, wantErr: true},
		{name: "interior too long", src: "ABCDEFGHI", anchor: AnchorInterior, wantErr: true},
		{name: "punctuation", src: "AB-CD", anchor: AnchorAnywhere, wantErr: true},
		{name: "empty", src: "   ", anchor: AnchorAnywhere, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := CompileTemplate(tt.src, tt.anchor)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidArgument)
				assert.Nil(t, tmpl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, tmpl.Len())
			assert.Equal(t, tt.anchor, tmpl.Anchor())
		})
	}
}

func TestMustCompileTemplate_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompileTemplate("AB", AnchorFull) })
	assert.NotPanics(t, func() { MustCompileTemplate("AB", AnchorStart) })
}

func TestTemplate_Match(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		number model.PhoneNumber
		anchor Anchor
		want   bool
	}{
		{name: "equal blocks", src: "ABCD X ABCD Y", anchor: AnchorFull, number: "1234512346", want: true},
		{name: "unequal blocks", src: "ABCD X ABCD Y", anchor: AnchorFull, number: "1234512356", want: false},
		{name: "distinct letters may coincide", src: "ABAB", anchor: AnchorEnd, number: "9876547777", want: true},
		{name: "literal zero", src: "XY A0 B0 C0 D0", anchor: AnchorFull, number: "9810203040", want: true},
		{name: "literal zero mismatch", src: "XY A0 B0 C0 D0", anchor: AnchorFull, number: "9810203041", want: false},
		{name: "case folded", src: "AxxxB CXXXD", anchor: AnchorFull, number: "1777227773", want: true},
		{name: "start anchor", src: "XXXX", anchor: AnchorStart, number: "7777123456", want: true},
		{name: "start anchor elsewhere", src: "XXXX", anchor: AnchorStart, number: "9777712345", want: false},
		{name: "end anchor", src: "XXXX", anchor: AnchorEnd, number: "9876541111", want: true},
		{name: "anywhere", src: "XXXX", anchor: AnchorAnywhere, number: "9877771234", want: true},
		{name: "interior", src: "XY XY XY", anchor: AnchorInterior, number: "9121212345", want: true},
		{name: "interior touching start", src: "XY XY XY", anchor: AnchorInterior, number: "1212123456", want: false},
		{name: "interior touching end", src: "XY XY XY", anchor: AnchorInterior, number: "9876121212", want: false},
		{name: "interior run continues to start", src: "XXX YYY", anchor: AnchorInterior, number: "1111222345", want: false},
		{name: "interior run continues to end", src: "XXX YYY", anchor: AnchorInterior, number: "9871112222", want: false},
		{name: "invalid number", src: "XXXX", anchor: AnchorAnywhere, number: "7777", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := MustCompileTemplate(tt.src, tt.anchor)
			assert.Equal(t, tt.want, tmpl.Match(tt.number))
		})
	}
}

func TestTemplate_String(t *testing.T) {
	assert.Equal(t, "XYABABCDCD", MustCompileTemplate("XY ABAB CDCD", AnchorFull).String())
	assert.Equal(t, "interior", AnchorInterior.String())
	assert.Equal(t, "anchor(42)", Anchor(42).String())
}
