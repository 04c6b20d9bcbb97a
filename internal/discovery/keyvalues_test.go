package discovery

import (
	"errors"
	"testing"
)

// TestParseKeyValues_Nested verifies nested blocks, escapes, and comments.
func TestParseKeyValues_Nested(t *testing.T) {
	text := `// generated
"libraryfolders"
{
	"0"
	{
		"path"		"C:\\Program Files (x86)\\Steam"
		"apps"
		{
			"228980"		"1"
		}
	}
	"1"	{ "path" "D:\\Games \"Lib\"" }
}
`
	doc, err := ParseKeyValues(text)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	folders := doc.Child("LibraryFolders")
	if folders == nil || len(folders.Children) != 2 {
		t.Fatalf("expected two folders, got %+v", folders)
	}
	if got := folders.Child("0").String("path"); got != `C:\Program Files (x86)\Steam` {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := folders.Child("1").String("path"); got != `D:\Games "Lib"` {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := folders.Child("0").Child("apps").String("228980"); got != "1" {
		t.Fatalf("expected nested value 1, got %q", got)
	}
}

// TestParseKeyValues_BareTokensAndConditionals verifies unquoted tokens and skipped platform tags.
func TestParseKeyValues_BareTokensAndConditionals(t *testing.T) {
	doc, err := ParseKeyValues("AppState { appid 10 name \"Half-Life\" [$WIN32] }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	state := doc.Child("AppState")
	if state.String("appid") != "10" || state.String("name") != "Half-Life" {
		t.Fatalf("unexpected state: %+v", state.Children)
	}
}

// TestParseKeyValues_Errors verifies malformed input is rejected.
func TestParseKeyValues_Errors(t *testing.T) {
	inputs := []string{
		`"a" "unterminated`,
		`"a" { "b" "c"`,
		`"a" "b" }`,
		`"lonely"`,
		`{ "a" "b" }`,
	}
	for _, in := range inputs {
		if _, err := ParseKeyValues(in); !errors.Is(err, ErrSyntax) {
			t.Fatalf("expected syntax error for %q, got %v", in, err)
		}
	}
}

// TestNode_StringOnBlock verifies a block child has no string value.
func TestNode_StringOnBlock(t *testing.T) {
	doc, err := ParseKeyValues(`"a" { "b" { } }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := doc.Child("a").String("b"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
	var missing *Node
	if missing.String("x") != "" || missing.Child("x") != nil {
		t.Fatalf("expected nil node lookups to be empty")
	}
}
