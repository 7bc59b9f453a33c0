package host

import (
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-boids/internal/spawn"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
)

func newTestFlock(t *testing.T, n, maxBoids int) *FlockActor {
	t.Helper()
	cfg := simulation.DefaultConfig()
	sim := cfg.NewSimulation(nil)
	sp, err := spawn.New(cfg.Bounds, simulation.SpawnConfig{Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	sp.Populate(sim, nil, n, maxBoids)
	return NewFlockActor(sim, sp, maxBoids)
}

func TestFlockActor_ApplyPatch(t *testing.T) {
	f := newTestFlock(t, 5, 20)
	patch, err := structpb.NewStruct(map[string]interface{}{
		"cohesion":    42.0,
		"wrapEdge":    true,
		"maxVelocity": 250.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.applyPatch(patch); err != nil {
		t.Fatalf("applyPatch() error = %v", err)
	}
	if f.sim.Cohesion() != 42 || !f.sim.WrapEdge() || f.sim.MaxVelocity() != 250 {
		t.Errorf("Params() = %+v; want cohesion 42, wrap, maxVelocity 250", f.sim.Params())
	}
	if f.sim.Alignment() != simulation.DefaultAlignment {
		t.Errorf("Alignment() = %v; an absent key should keep %v", f.sim.Alignment(), simulation.DefaultAlignment)
	}
}

func TestFlockActor_ApplyPatchRejectsUnknownKeys(t *testing.T) {
	f := newTestFlock(t, 5, 20)
	before := f.sim.Params()
	patch, _ := structpb.NewStruct(map[string]interface{}{
		"cohesion": 42.0,
		"gravity":  9.81,
	})
	if err := f.applyPatch(patch); err == nil {
		t.Fatal("applyPatch() error = nil; want unknown key rejected")
	}
	if f.sim.Params() != before {
		t.Errorf("a rejected patch changed Params() to %+v", f.sim.Params())
	}
}

func TestFlockActor_Resize(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		delta       int
		wantAdded   int
		wantRemoved int
		wantCount   int
	}{
		{"Grow", 5, 4, 4, 0, 9},
		{"Grow past the cap", 5, 50, 15, 0, 20},
		{"Shrink", 5, -2, 0, 2, 3},
		{"Shrink to the floor", 5, -10, 0, 3, simulation.MinPopulation},
		{"Zero", 5, 0, 0, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFlock(t, tt.start, 20)
			added, removed := f.resize(tt.delta)
			if added != tt.wantAdded || removed != tt.wantRemoved {
				t.Errorf("resize(%d) = (+%d, -%d); want (+%d, -%d)", tt.delta, added, removed, tt.wantAdded, tt.wantRemoved)
			}
			if f.sim.Count() != tt.wantCount {
				t.Errorf("Count() = %d; want %d", f.sim.Count(), tt.wantCount)
			}
		})
	}
}

func TestFlockActor_StatsMessage(t *testing.T) {
	f := newTestFlock(t, 3, 20)
	f.tick(durationpb.New(20 * time.Millisecond))
	f.tick(durationpb.New(20 * time.Millisecond))

	msg, err := f.statsMessage()
	if err != nil {
		t.Fatalf("statsMessage() error = %v", err)
	}
	got := SampleFromProto(msg)
	want := f.sim.Stats()
	if got.Tick != 2 {
		t.Errorf("Tick = %d; want 2", got.Tick)
	}
	if got.Count != want.Count || got.MeanSpeed != want.MeanSpeed || got.MaxSpeed != want.MaxSpeed {
		t.Errorf("Stats = %+v; want %+v", got.Stats, want)
	}
	if !got.Centroid.Eq(want.Centroid) {
		t.Errorf("Centroid = %v; want %v", got.Centroid, want.Centroid)
	}
}

func TestSampleFromProto_MissingFields(t *testing.T) {
	got := SampleFromProto(&structpb.Struct{})
	if got.Tick != 0 || got.Count != 0 || !got.Centroid.Eq(geometry.Vector2D{}) {
		t.Errorf("SampleFromProto(empty) = %+v; want the zero sample", got)
	}
}

func TestRunner_Run(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	r, err := Start(ctx, newTestFlock(t, 6, 20), nil)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer func() { _ = r.Stop(ctx) }()

	if err := r.Resize(ctx, 4); err != nil {
		t.Fatal(err)
	}
	if err := r.Patch(ctx, map[string]interface{}{"wrapEdge": true}); err != nil {
		t.Fatal(err)
	}

	samples, err := r.Run(ctx, 5, 20*time.Millisecond, 2)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	wantTicks := []int64{0, 2, 4, 5}
	if len(samples) != len(wantTicks) {
		t.Fatalf("Run() returned %d samples; want %d", len(samples), len(wantTicks))
	}
	for i, s := range samples {
		if s.Tick != wantTicks[i] {
			t.Errorf("samples[%d].Tick = %d; want %d", i, s.Tick, wantTicks[i])
		}
		if s.Count != 10 {
			t.Errorf("samples[%d].Count = %d; want 10", i, s.Count)
		}
	}
}

func TestRunner_RunReportsCappedFlock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// asked for 30 with a cap of 20
	r, err := Start(ctx, newTestFlock(t, 30, 20), nil)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer func() { _ = r.Stop(ctx) }()

	samples, err := r.Run(ctx, 1, 20*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if samples[0].Count != 20 {
		t.Errorf("first sample Count = %d; want the capped 20", samples[0].Count)
	}
}
