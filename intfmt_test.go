package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"+42", 42},
		{"-7", -7},
		{"  10", 10},
		{"\t-3", -3},
		{"1K", 1 << 10},
		{"1k", 1 << 10},
		{"2M", 2 << 20},
		{"-1k", -(1 << 10)},
		{"0x0", 0},
		{"0x10", 16},
		{"0xff", 255},
		{"0XFF", 255},
		{"0xFFFFFFFFFFFFFFFF", -1}, // unsigned pattern reinterpreted as signed
		{"9223372036854775807", 1<<63 - 1},
	} {
		t.Run(tc.in, func(t *testing.T) {
			n, err := parseInt(tc.in)
			if assert.NoError(t, err) {
				assert.Equal(t, tc.want, n)
			}
		})
	}
}

func TestParseIntErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		code failureCode
	}{
		{"", errDecimalRequired},
		{"   ", errDecimalRequired},
		{"abc", errDecimalRequired},
		{"12x", errDecimalRequired},
		{"-", errDecimalRequired},
		{"K", errDecimalRequired},
		{"0x", errTooManyDigits},
		{"0x12345678901234567", errTooManyDigits}, // 17 hex digits
		{"99999999999999999999", errTooManyDigits},
	} {
		t.Run(tc.in, func(t *testing.T) {
			_, err := parseInt(tc.in)
			var f *failure
			if assert.True(t, errors.As(err, &f), "expected a failure, got %v", err) {
				assert.Equal(t, tc.code, f.code)
			}
		})
	}
}

func TestFormatCreationCount(t *testing.T) {
	assert.Equal(t, "0001", formatCreationCount(1))
	assert.Equal(t, "0042", formatCreationCount(42))
	assert.Equal(t, "9999", formatCreationCount(9999))
	assert.Equal(t, "10000", formatCreationCount(10000), "width widens past 9999")
}
