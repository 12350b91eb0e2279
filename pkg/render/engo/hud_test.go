// pkg/render/engo/hud_test.go
package engo

import (
	"testing"

	"github.com/opd-ai/go-gravnav/pkg/engine"
	"github.com/opd-ai/go-gravnav/pkg/entity"
)

func TestHUD_Show(t *testing.T) {
	var titles []string
	hud := &HUD{setTitle: func(s string) { titles = append(titles, s) }}
	cfg := &entity.Configuration{Score: 3}

	hud.Show(engine.Frame{FPS: 60, Config: cfg})
	hud.Show(engine.Frame{FPS: 60, Config: cfg})

	want := "gravnav | FPS: 60.0 | Score: 3"
	if len(titles) != 1 {
		t.Fatalf("titles set = %d, want 1", len(titles))
	}
	if titles[0] != want || hud.Title() != want {
		t.Errorf("Title() = %q, want %q", hud.Title(), want)
	}

	cfg.Score = 4
	hud.Show(engine.Frame{FPS: 60, Config: cfg})
	if len(titles) != 2 {
		t.Errorf("titles set = %d, want 2", len(titles))
	}
}
