// Package host runs a Simulation inside a goakt actor so every mutation goes
// through one mailbox, processed one message at a time.
package host

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids/internal/spawn"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Messages understood by FlockActor:
//
//	*durationpb.Duration   advance the flock by that frame delta
//	*structpb.Struct       patch the tunables, keys are the Params json names
//	*wrapperspb.Int32Value grow (positive) or shrink (negative) the flock
//	*emptypb.Empty         ask for the current stats, answered with a *structpb.Struct
type FlockActor struct {
	sim      *simulation.Simulation
	spawner  *spawn.Spawner
	maxBoids int
	ticks    int64
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor takes ownership of sim. spawner places boids added by resize messages.
func NewFlockActor(sim *simulation.Simulation, spawner *spawn.Spawner, maxBoids int) *FlockActor {
	return &FlockActor{
		sim:      sim,
		spawner:  spawner,
		maxBoids: maxBoids,
	}
}

func (f *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock is starting with %d boids", f.sim.Count())
	return nil
}

func (f *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("Flock started")

	case *durationpb.Duration:
		f.tick(msg)

	case *structpb.Struct:
		if err := f.applyPatch(msg); err != nil {
			ctx.Logger().Warnf("params patch rejected: %v", err)
			return
		}
		ctx.Logger().Debugf("params patched: %+v", f.sim.Params())

	case *wrapperspb.Int32Value:
		added, removed := f.resize(int(msg.GetValue()))
		ctx.Logger().Debugf("population %+d/-%d, now %d", added, removed, f.sim.Count())

	case *emptypb.Empty:
		reply, err := f.statsMessage()
		if err != nil {
			ctx.Logger().Errorf("failed to build stats: %v", err)
			reply = &structpb.Struct{}
		}
		ctx.Response(reply)

	default:
		ctx.Unhandled()
	}
}

func (f *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock stopped after %d ticks", f.ticks)
	return nil
}

func (f *FlockActor) tick(dt *durationpb.Duration) {
	f.sim.Update(dt.AsDuration().Seconds())
	f.ticks++
}

// applyPatch overlays the struct fields on the current tuning.
// Unknown keys reject the whole patch.
func (f *FlockActor) applyPatch(patch *structpb.Struct) error {
	raw, err := json.Marshal(patch.AsMap())
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}
	p := f.sim.Params()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("failed to decode patch: %w", err)
	}
	f.sim.SetParams(p)
	return nil
}

func (f *FlockActor) resize(delta int) (added, removed int) {
	switch {
	case delta > 0:
		added = f.spawner.Populate(f.sim, nil, delta, f.maxBoids)
	case delta < 0:
		removed = spawn.Cull(f.sim, -delta)
	}
	return added, removed
}

func (f *FlockActor) statsMessage() (*structpb.Struct, error) {
	st := f.sim.Stats()
	return structpb.NewStruct(map[string]interface{}{
		"count":     st.Count,
		"meanSpeed": st.MeanSpeed,
		"maxSpeed":  st.MaxSpeed,
		"centroidX": st.Centroid.X,
		"centroidY": st.Centroid.Y,
		"ticks":     f.ticks,
	})
}

// Sample is one stats reading taken from a running flock.
type Sample struct {
	Tick int64
	simulation.Stats
}

// SampleFromProto decodes a stats reply.
func SampleFromProto(s *structpb.Struct) Sample {
	fields := s.GetFields()
	num := func(key string) float64 { return fields[key].GetNumberValue() }
	return Sample{
		Tick: int64(num("ticks")),
		Stats: simulation.Stats{
			Count:     int(num("count")),
			MeanSpeed: num("meanSpeed"),
			MaxSpeed:  num("maxSpeed"),
			Centroid:  geometry.NewVector(num("centroidX"), num("centroidY")),
		},
	}
}
