package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/charset"

	"github.com/GriffinCanCode/mfdash/internal/shared/types"
)

func encodeAs(t *testing.T, label, s string) string {
	t.Helper()
	enc, _ := charset.Lookup(label)
	require.NotNil(t, enc, label)
	out, err := enc.NewEncoder().String(s)
	require.NoError(t, err)
	return out
}

func TestLoadSnapshotRejectsOversized(t *testing.T) {
	_, err := LoadSnapshot(strings.Repeat("a", MaxHTMLSize+1))
	assert.Error(t, err)
}

func TestLoadSnapshotQueryable(t *testing.T) {
	snap, err := LoadSnapshot(`<html><head><title>ポートフォリオ</title></head><body></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "ポートフォリオ", snap.doc.Find("title").Text())
}

func TestSanitizerStripsScripts(t *testing.T) {
	out := NewSanitizer().Sanitize(`<div class="bs-group" onclick="x()"><script>alert(1)</script><span class="amount">1</span></div>`)

	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, `class="bs-group"`)
	assert.Contains(t, out, `class="amount"`)
}

func TestLoadSnapshotDecodesShiftJIS(t *testing.T) {
	page := encodeAs(t, "shift_jis", `<table><tr><td>三菱UFJ銀行 普通預金</td><td>1,500,000円</td></tr></table>`)

	snap, err := LoadSnapshot(page)
	require.NoError(t, err)

	res := NewExtractor(DefaultSelectors()).Portfolio(snap)
	assert.Equal(t, []types.AssetRecord{
		{Category: types.TabularCategory, Name: "三菱UFJ銀行 普通預金", Value: 1500000},
	}, res.Records)
}

func TestLoadSnapshotHonorsMetaCharset(t *testing.T) {
	page := encodeAs(t, "euc-jp", `<html><head><meta charset="euc-jp"><title>資産推移</title></head>`+
		`<body><table><tr><td>2026/02/01</td><td>5,383,100円</td></tr></table></body></html>`)

	snap, err := LoadSnapshot(page)
	require.NoError(t, err)

	assert.Equal(t, "資産推移", snap.doc.Find("title").Text())
	assert.Equal(t, []types.HistoryPoint{{Date: "2026/02/01", Value: 5383100}},
		NewExtractor(DefaultSelectors()).History(snap).Records)
}

func TestSniffCharset(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"meta declaration", encodeAs(t, "euc-jp", `<meta charset="EUC-JP"><p>楽天銀行</p>`), "euc-jp"},
		{"undeclared shift_jis", encodeAs(t, "shift_jis", `<td>楽天ポイント</td>`), "shift_jis"},
		{"utf-16 bom", "\xff\xfe<\x00p\x00>\x00", "utf-16le"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sniffCharset([]byte(tt.data)))
		})
	}
}
