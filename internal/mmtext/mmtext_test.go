package mmtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := "# generated\r\n" +
		"[info]\r\n" +
		"Nand_Blk_Size = 131072\r\n" +
		"mtdparts: mtdparts=nand:384k@0k(IPL)\r\n" +
		"\r\n" +
		"[ipl]\n" +
		"; copies\n" +
		"name = uboot-min\n" +
		"empty =\n"

	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"info", "ipl"}, doc.Names())

	info, ok := doc.Section("info")
	require.True(t, ok)
	v, ok := info.Get("nand_blk_size")
	require.True(t, ok)
	require.Equal(t, "131072", v)

	v, ok = info.Get("MTDPARTS")
	require.True(t, ok)
	require.Equal(t, "mtdparts=nand:384k@0k(IPL)", v, "only the first separator splits")

	ipl, _ := doc.Section("ipl")
	v, ok = ipl.Get("empty")
	require.True(t, ok)
	require.Empty(t, v)

	_, ok = doc.Section("IPL")
	require.False(t, ok, "section names are case-sensitive")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  string
	}{
		{name: "unterminated header", input: "[boot\n", want: ErrMalformedSection, line: "line 1"},
		{name: "empty header", input: "[ ]\n", want: ErrMalformedSection, line: "line 1"},
		{name: "entry first", input: "\nname = x\n", want: ErrEntryOutsideSection, line: "line 2"},
		{name: "no separator", input: "[a]\nname\n", want: ErrMalformedEntry, line: "line 2"},
		{name: "no key", input: "[a]\n= x\n", want: ErrMalformedEntry, line: "line 2"},
		{name: "duplicate section", input: "[a]\n[a]\n", want: ErrDuplicateSection, line: "line 2"},
		{name: "duplicate key", input: "[a]\nk = 1\nK = 2\n", want: ErrDuplicateKey, line: "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.want)
			require.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestDocument_Bytes(t *testing.T) {
	doc := &Document{}
	boot, err := doc.AddSection("boot")
	require.NoError(t, err)
	boot.Set("name", "boot")
	boot.Set("Start", "0")
	boot.Set("name", "renamed")

	rootfs, err := doc.AddSection("rootfs")
	require.NoError(t, err)
	rootfs.Set("size", "-")

	_, err = doc.AddSection("boot")
	require.ErrorIs(t, err, ErrDuplicateSection)

	want := "[boot]\nname = renamed\nstart = 0\n\n[rootfs]\nsize = -\n\n"
	require.Equal(t, want, string(doc.Bytes()))

	var sb strings.Builder
	n, err := doc.WriteTo(&sb)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)

	back, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, doc, back)
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"1", "yes", "True", " ON "} {
		v, err := ParseBool(in)
		require.NoError(t, err, in)
		require.True(t, v, in)
	}
	for _, in := range []string{"0", "no", "FALSE", "off"} {
		v, err := ParseBool(in)
		require.NoError(t, err, in)
		require.False(t, v, in)
	}
	_, err := ParseBool("maybe")
	require.ErrorIs(t, err, ErrInvalidBool)
}
