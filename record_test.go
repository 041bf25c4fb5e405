package wayharvest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayharvest/wayharvest"
)

func TestReadableTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ts   string
		want string
	}{
		{name: "full capture token", ts: "20111225143015", want: "25/12/2011"},
		{name: "token with trailing garbage", ts: "20111225143015abc", want: "25/12/2011"},
		{name: "too short", ts: "2011", want: "2011"},
		{name: "not a date", ts: "aaaabbccddeeff", want: "aaaabbccddeeff"},
		{name: "impossible month", ts: "20111325143015", want: "20111325143015"},
		{name: "empty", ts: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wayharvest.ReadableTimestamp(tt.ts))
		})
	}
}

func TestPage_Record(t *testing.T) {
	t.Parallel()

	page := &wayharvest.Page{
		Seq:         3,
		Timestamp:   "20050601120000",
		OriginalURL: "http://example.com/page",
		ArchiveURL:  "https://web.archive.org/web/20050601120000/http://example.com/page",
		Title:       "A Title",
		RawText:     "raw\nlines",
		CleanText:   "clean lines",
	}

	rec := page.Record()

	assert.Equal(t, "01/06/2005", rec.Timestamp)
	assert.Equal(t, page.OriginalURL, rec.OriginalURL)
	assert.Equal(t, page.ArchiveURL, rec.ArchiveURL)
	assert.Equal(t, page.Title, rec.Title)
	assert.Equal(t, page.RawText, rec.RawText)
	assert.Equal(t, page.CleanText, rec.CleanText)
}

func TestRecord_Row(t *testing.T) {
	t.Parallel()

	rec := wayharvest.Record{
		Timestamp:   "01/06/2005",
		OriginalURL: "http://example.com/page",
		ArchiveURL:  "https://web.archive.org/web/20050601120000/http://example.com/page",
		Title:       "A Title",
		RawText:     "raw",
		CleanText:   "clean",
	}

	row := rec.Row()

	assert.Len(t, row, len(wayharvest.RecordColumns()))
	assert.Equal(t, []string{
		"01/06/2005",
		"http://example.com/page",
		"https://web.archive.org/web/20050601120000/http://example.com/page",
		"A Title",
		"raw",
		"clean",
	}, row)
}
