package agentsmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBlock = BuildBlock("## Skills\n- one")

func TestUpsert_DefaultDocument(t *testing.T) {
	got := Upsert(DefaultDocument, testBlock)

	want := "<INSTRUCTIONS>\n\n# Repo Agent Instructions\n\n" + testBlock + "\n\n</INSTRUCTIONS>\n"
	assert.Equal(t, want, got)
	assert.Equal(t, got, Upsert(got, testBlock))
}

func TestUpsert_ReplacesExistingBlock(t *testing.T) {
	existing := "# Title\n\nintro\n\n" + BuildBlock("old") + "\n\n\n## Footer\nkeep me\n"

	got := Upsert(existing, testBlock)

	assert.Equal(t, "# Title\n\nintro\n\n"+testBlock+"\n\n## Footer\nkeep me\n", got)
	assert.Equal(t, 1, strings.Count(got, StartMarker))
	assert.Equal(t, got, Upsert(got, testBlock))
}

func TestUpsert_BlockAtStart(t *testing.T) {
	existing := BuildBlock("old") + "\nrest\n"

	got := Upsert(existing, testBlock)

	assert.Equal(t, testBlock+"\n\nrest\n", got)
}

func TestUpsert_AppendsWithoutTag(t *testing.T) {
	existing := "# Notes\n\nsome text\n\n\n"

	got := Upsert(existing, testBlock)

	assert.Equal(t, "# Notes\n\nsome text\n\n"+testBlock+"\n", got)
	assert.Equal(t, got, Upsert(got, testBlock))
}

func TestUpsert_EmptyDocument(t *testing.T) {
	assert.Equal(t, testBlock+"\n", Upsert("", testBlock))
	assert.Equal(t, testBlock+"\n", Upsert(" \n\t\n", testBlock))
}

func TestUpsert_TagContentUntouched(t *testing.T) {
	existing := "<INSTRUCTIONS>\nrules\n   </INSTRUCTIONS>\n\ntrailer  \n"

	got := Upsert(existing, testBlock)

	assert.Equal(t, "<INSTRUCTIONS>\nrules\n\n"+testBlock+"\n\n</INSTRUCTIONS>\n\ntrailer  \n", got)
}

func TestUpsert_StrayEndMarkerBeforeStart(t *testing.T) {
	existing := "x\n" + EndMarker + "\n" + BuildBlock("old") + "\n"

	got := Upsert(existing, testBlock)

	assert.Equal(t, "x\n"+EndMarker+"\n\n"+testBlock+"\n", got)
	assert.Equal(t, 1, strings.Count(got, StartMarker))
}

func TestUpsert_UnterminatedStartFallsBack(t *testing.T) {
	existing := "a\n" + StartMarker + "\nno end\n"

	got := Upsert(existing, testBlock)

	assert.True(t, strings.HasSuffix(got, "no end\n\n"+testBlock+"\n"))
}

func TestCountMarkers(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"none", "plain", true},
		{"one pair", BuildBlock("x"), true},
		{"two pairs", BuildBlock("x") + BuildBlock("y"), false},
		{"reversed", EndMarker + StartMarker, false},
		{"start only", StartMarker, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, CountMarkers(tt.text).Valid())
		})
	}
}
