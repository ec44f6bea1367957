package levels

import (
	"errors"
	"testing"
)

func TestLoadTrainingLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("training.json")
	if err != nil {
		t.Fatalf("load training level: %v", err)
	}
	if lvl.Name != "training" {
		t.Fatalf("expected name training, got %q", lvl.Name)
	}
	if lvl.Gravity >= 0 {
		t.Fatalf("expected downward gravity, got %v", lvl.Gravity)
	}

	var ground, platforms int
	for _, b := range lvl.Blocks {
		if b.OneWay() {
			platforms++
		} else {
			ground++
		}
	}
	if ground == 0 || platforms == 0 {
		t.Fatalf("expected ground and platform blocks, got %d ground %d platforms", ground, platforms)
	}
}

func TestParseRejectsBadBlocks(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "unknown kind",
			data: `{"blocks":[{"kind":"lava","x":0,"y":0,"width":1,"height":1}]}`,
			want: ErrUnknownBlockKind,
		},
		{
			name: "zero width",
			data: `{"blocks":[{"kind":"ground","x":0,"y":0,"width":0,"height":1}]}`,
			want: ErrEmptyBlock,
		},
		{
			name: "negative height",
			data: `{"blocks":[{"kind":"platform","x":0,"y":0,"width":1,"height":-1}]}`,
			want: ErrEmptyBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"blocks":`)); err == nil {
		t.Fatal("expected an error for truncated JSON")
	}
}
