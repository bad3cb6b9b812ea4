package urlnorm

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "no scheme", raw: "example.com", want: "https://example.com"},
		{name: "no scheme with spaces", raw: "  example.com/path?q=1 \n", want: "https://example.com/path?q=1"},
		{name: "https kept", raw: "https://example.com", want: "https://example.com"},
		{name: "http kept", raw: "http://example.com/a/b", want: "http://example.com/a/b"},
		{name: "port", raw: "example.com:8080/x", want: "https://example.com:8080/x"},
		{name: "localhost", raw: "http://localhost:3000", want: "http://localhost:3000"},
		{name: "ip address", raw: "https://123.123.123.123/test", want: "https://123.123.123.123/test"},
		{name: "underscore no zone", raw: "not_a_valid_url", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "only spaces", raw: "   ", wantErr: true},
		{name: "space into", raw: "https://tes t.com", wantErr: true},
		{name: "wrong chars", raw: "https://tes😀t.com", wantErr: true},
		{name: "empty zone", raw: "https://test.", wantErr: true},
		{name: "no zone", raw: "https://test", wantErr: true},
		{name: "other scheme gets prefixed", raw: "ftp://example.com", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidURL)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_GeneratedHosts(t *testing.T) {
	for range 50 {
		host := gofakeit.LetterN(12) + "." + gofakeit.DomainSuffix()

		got, err := Normalize(host)
		require.NoError(t, err, host)
		assert.Equal(t, "https://"+host, got)

		withScheme := "http://" + host
		got, err = Normalize(withScheme)
		require.NoError(t, err, withScheme)
		assert.Equal(t, withScheme, got)
	}
}
