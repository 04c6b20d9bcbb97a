package uiws

import (
	"strings"
	"testing"

	"github.com/frudas24/padnexus/internal/discovery"
)

// TestEncode_BackslashRoundTrip verifies Windows paths and quotes survive delivery unchanged.
func TestEncode_BackslashRoundTrip(t *testing.T) {
	games := []discovery.Game{
		{Name: `Tom "Quoted" & Co <1>`, Path: `C:\Games\A`, AppID: "10"},
		{Name: "Plain", Path: `\\server\share\b.exe`},
	}
	data, err := Encode(GamesMessage(games))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !strings.Contains(string(data), `"C:\\Games\\A"`) {
		t.Fatalf("expected doubled backslashes, got %s", data)
	}
	if !strings.Contains(string(data), `& Co <1>`) {
		t.Fatalf("expected HTML characters unescaped, got %s", data)
	}

	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.T != TypeGames || len(msg.Games) != 2 {
		t.Fatalf("unexpected message: %+v", msg)
	}
	for i := range games {
		if msg.Games[i] != games[i] {
			t.Fatalf("expected %+v, got %+v", games[i], msg.Games[i])
		}
	}
}

// TestEncode_GamesShape verifies the list is always an array and appId is always present.
func TestEncode_GamesShape(t *testing.T) {
	data, err := Encode(GamesMessage(nil))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(data) != `{"t":"games","games":[]}` {
		t.Fatalf("unexpected empty payload: %s", data)
	}

	data, err = Encode(GamesMessage([]discovery.Game{{Name: "Foo", Path: `C:\Foo\foo.exe`}}))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := `{"t":"games","games":[{"name":"Foo","path":"C:\\Foo\\foo.exe","appId":""}]}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

// TestDecode_Command verifies decoding a command message.
func TestDecode_Command(t *testing.T) {
	msg, err := Decode([]byte(`{"t":"command","cmd":"toggleUI"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.T != TypeCommand || msg.Cmd != "toggleUI" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestVisibilityMessage verifies false is still serialized.
func TestVisibilityMessage(t *testing.T) {
	data, err := Encode(VisibilityMessage(false))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(data) != `{"t":"visibility","visible":false}` {
		t.Fatalf("unexpected payload: %s", data)
	}
}

// TestPipeline_PushOnce verifies the list is released only after every stage and only once.
func TestPipeline_PushOnce(t *testing.T) {
	p := &pipeline{}
	if p.take() {
		t.Fatalf("expected no push before environment ready")
	}
	p.envReady = true
	p.connected = true
	if p.stage() != StageControllerReady || p.take() {
		t.Fatalf("expected controller_ready without push, got %s", p.stage())
	}
	p.loaded = true
	if !p.take() {
		t.Fatalf("expected push at navigation_complete")
	}
	if p.take() {
		t.Fatalf("expected a single push")
	}
}
