package usecase_test

import (
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"25.00", 2500, false},
		{"25", 2500, false},
		{"3.5", 350, false},
		{"0", 0, false},
		{"0.01", 1, false},
		{" 20.00 ", 2000, false},

		{"", 0, true},
		{"   ", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"1.234", 0, true}, // 小数第3位は拒否
		{".5", 0, true},
		{"5.", 0, true},
		{"1e3", 0, true},
		{"99999999999999999999", 0, true}, // オーバーフロー
	}

	for _, tc := range cases {
		got, err := usecase.ParseMoney("price", tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			_, ok := usecase.AsValidationError(err)
			assert.True(t, ok, "input %q should fail as ValidationError", tc.in)
		} else {
			assert.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"10", 10, false},
		{"0", 0, false},
		{" 5 ", 5, false},

		{"", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"ten", 0, true},
	}

	for _, tc := range cases {
		got, err := usecase.ParseCount("quantity", tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			_, ok := usecase.AsValidationError(err)
			assert.True(t, ok, "input %q should fail as ValidationError", tc.in)
		} else {
			assert.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}
