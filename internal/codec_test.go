package internal

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEncode = []struct {
	key1, key2 string
	input      string
	output     string
}{
	{"Apfel", "Kirsche", "Beispielklartext", "SLEEK XILRB IEATT P"},
	{"Hans", "Dampf", "Hallo Welt!", "WEALT HLOL"},
	{
		"Lorem", "ipsum",
		"Lorem ipsum dolor sit amet, consetetur sadipscing elitr, sed diam",
		"EEMET MIIGL SOESN RIOPS SUALS DNDTR TEOCI UMTOE ICSAL DIMDP RRTA",
	},
	{"Apfel", "Kirsche", "Straße", "SETSS AR"},
	{"Apfel", "Kirsche", "", ""},
}

func TestEncode(t *testing.T) {
	for idx, tc := range testEncode {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			got, err := Encode(tc.key1, tc.key2, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.output, got)

			plain, err := Decode(tc.key1, tc.key2, got)
			require.NoError(t, err)
			assert.Equal(t, Normalize(tc.input), plain)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		key1, key2 string
		input      string
		want       string
	}{
		{"Apfel", "Kirsche", "SLEEKXILRBIEATTP", "BEISPIELKLARTEXT"},
		{"Apfel", "Kirsche", "SLEEK XILRB IEATT P", "BEISPIELKLARTEXT"},
		{"Apfel", "Kirsche", "sleek-xilrb ieatt p", "BEISPIELKLARTEXT"},
		{"Apfel", "Kirsche", "\tSLEEK\nXILRB\u00a0IEATT P\n", "BEISPIELKLARTEXT"},
		{"Hans", "Dampf", "WEALTHLOL", "HALLOWELT"},
		{"Apfel", "Kirsche", "SETSS AR", "STRASSE"},
		{"Apfel", "Kirsche", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Decode(tt.key1, tt.key2, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeEmptyKey(t *testing.T) {
	tests := []struct {
		name       string
		key1, key2 string
		wantKey    string
	}{
		{"key1 empty", "", "Kirsche", "key1"},
		{"key1 punctuation only", " .,! ", "Kirsche", "key1"},
		{"key2 empty", "Apfel", "", "key2"},
		{"key2 whitespace only", "Apfel", "\t\n", "key2"},
		{"both empty", "", "", "key1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, op := range []func(string, string, string) (string, error){Encode, Decode} {
				out, err := op(tt.key1, tt.key2, "Beispielklartext")
				require.Error(t, err)
				assert.Empty(t, out)
				assert.True(t, errors.Is(err, ErrEmptyKey))

				var kerr *KeyError
				require.True(t, errors.As(err, &kerr))
				assert.Equal(t, tt.wantKey, kerr.Name)
				assert.Contains(t, err.Error(), tt.wantKey)
			}
		})
	}
}

func TestRoundTripLaw(t *testing.T) {
	keys := []string{"Apfel", "Kirsche", "Hans", "Dampf", "Mississippi", "Z", "abc", "Straße", "Ünïcödé"}
	alphabet := []rune("abcdefghijklmnopqrstuvwxyzÄÖÜäöüßﬀ 0123456789,.;!?")
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		k1 := keys[r.Intn(len(keys))]
		k2 := keys[r.Intn(len(keys))]
		var b strings.Builder
		n := r.Intn(80)
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[r.Intn(len(alphabet))])
		}
		text := b.String()

		cipher, err := Encode(k1, k2, text)
		require.NoError(t, err)
		plain, err := Decode(k1, k2, cipher)
		require.NoError(t, err)
		require.Equal(t, Normalize(text), plain, "keys %q/%q text %q", k1, k2, text)
	}
}

func TestUnicodeExpansionRoundTrip(t *testing.T) {
	for _, text := range []string{"ß", "ßßß", "Grüße aus Köln", "ﬀ ŉ", "Maße und Gewichte"} {
		cipher, err := Encode("Apfel", "Kirsche", text)
		require.NoError(t, err)
		plain, err := Decode("Apfel", "Kirsche", cipher)
		require.NoError(t, err)
		assert.Equal(t, Normalize(text), plain, text)
	}
}

func TestEncodeWithBlockSize(t *testing.T) {
	tests := []struct {
		blockSize int
		want      string
	}{
		{0, "SLEEKXILRBIEATTP"},
		{4, "SLEE KXIL RBIE ATTP"},
		{5, "SLEEK XILRB IEATT P"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.blockSize), func(t *testing.T) {
			got, err := EncodeWith(Options{BlockSize: tt.blockSize}, "Apfel", "Kirsche", "Beispielklartext")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			plain, err := DecodeWith(Options{BlockSize: tt.blockSize}, "Apfel", "Kirsche", got)
			require.NoError(t, err)
			assert.Equal(t, "BEISPIELKLARTEXT", plain)
		})
	}
}

func TestEncodeLogsLengthsOnly(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{BlockSize: BlockSize, Logger: NewLogger(&buf, slog.LevelDebug)}

	_, err := EncodeWith(opts, "Apfel", "Kirsche", "Beispielklartext")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=encode")
	assert.Contains(t, out, "key1_len=5")
	assert.Contains(t, out, "key2_len=7")
	assert.Contains(t, out, "text_len=16")
	for _, secret := range []string{"APFEL", "KIRSCHE", "BEISPIEL", "Apfel"} {
		assert.NotContains(t, out, secret)
	}
}
