package clean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayharvest/wayharvest/clean"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "already canonical", line: "a b c", want: "a b c"},
		{name: "internal runs collapse", line: "a  b\t\tc", want: "a b c"},
		{name: "surrounding whitespace trimmed", line: "  hello world  ", want: "hello world"},
		{name: "whitespace only", line: " \t ", want: ""},
		{name: "empty", line: "", want: ""},
		{name: "greek preserved", line: "  Καλημέρα   κόσμε ", want: "Καλημέρα κόσμε"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clean.Canonical(tt.line))
		})
	}
}

func TestLoose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "lowercases", line: "Hello World", want: "hello world"},
		{name: "strips punctuation", line: "Hello, World!", want: "hello world"},
		{name: "keeps digits and underscore", line: "item_42 ready", want: "item_42 ready"},
		{name: "collapses gaps left by stripping", line: "Copyright © 2004", want: "copyright 2004"},
		{name: "punctuation only", line: "***", want: ""},
		{name: "greek lowercased", line: "ΕΛΛΑΔΑ 2004!", want: "ελλαδα 2004"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clean.Loose(tt.line))
		})
	}
}
