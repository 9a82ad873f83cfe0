package session

import (
	"errors"
	"testing"
	"time"

	"github.com/axwes/Paint-Replica/internal/action"
	"github.com/axwes/Paint-Replica/internal/layers"
	"github.com/axwes/Paint-Replica/internal/replay"
)

func sampleEntries() []replay.Entry {
	return []replay.Entry{
		{Action: &action.PaintAction{Steps: []action.PaintStep{
			{X: 1, Y: 2, Layer: layers.Black},
			{X: 2, Y: 2, Layer: layers.Black},
		}}},
		{Action: action.SpecialAction()},
		{Action: &action.PaintAction{Steps: []action.PaintStep{
			{X: 1, Y: 2, Layer: layers.Black},
		}}, Undo: true},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	meta := Metadata{Style: "SET", Width: 8, Height: 6, Theme: "midnight"}
	id, err := st.Save(meta, sampleEntries())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("save should assign an id")
	}

	back, err := st.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Style != "SET" || back.Width != 8 || back.Height != 6 {
		t.Errorf("metadata roundtrip lost fields: %+v", back)
	}
	if back.Actions != 3 {
		t.Errorf("actions = %d, want 3", back.Actions)
	}
	if back.CreatedAt.IsZero() {
		t.Error("save should stamp creation time")
	}

	acts, err := st.LoadActions(id)
	if err != nil {
		t.Fatalf("load actions: %v", err)
	}
	if len(acts) != 3 {
		t.Fatalf("loaded %d actions, want 3", len(acts))
	}
	if !acts[1].Action.Special {
		t.Error("special flag lost")
	}
	if !acts[2].Undo {
		t.Error("undo flag lost")
	}
	if acts[0].Action.Steps[0].Layer.Index != layers.Black.Index {
		t.Error("layer identity lost")
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	older := Metadata{Style: "SET", Width: 4, Height: 4, CreatedAt: time.Now().Add(-time.Hour)}
	newer := Metadata{Style: "ADD", Width: 4, Height: 4, CreatedAt: time.Now()}
	if _, err := st.Save(older, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(newer, nil); err != nil {
		t.Fatal(err)
	}

	sessions, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("listed %d sessions, want 2", len(sessions))
	}
	if sessions[0].Style != "ADD" {
		t.Error("list should order newest first")
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	sessions, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	_, err := st.Load("nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("Load error = %v, want NotFoundError", err)
	} else if nf.ID != "nope" {
		t.Errorf("NotFoundError.ID = %q, want nope", nf.ID)
	}

	if _, err := st.LoadActions("nope"); !errors.As(err, &nf) {
		t.Errorf("LoadActions error = %v, want NotFoundError", err)
	}
}
