package host

import (
	"context"
	"fmt"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	systemName = "boids"
	flockName  = "flock"

	DefaultAskTimeout = 5 * time.Second
)

// Runner owns the actor system hosting one FlockActor.
type Runner struct {
	System     actor.ActorSystem
	flockPID   *actor.PID
	askTimeout time.Duration
}

// Start boots an actor system and spawns flock in it.
// A nil logger silences the actor system.
func Start(ctx context.Context, flock *FlockActor, logger golog.Logger) (*Runner, error) {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	system, err := actor.NewActorSystem(systemName,
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	pid, err := system.Spawn(ctx, flockName, flock)
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}
	return &Runner{
		System:     system,
		flockPID:   pid,
		askTimeout: DefaultAskTimeout,
	}, nil
}

// Stop shuts the actor system down.
func (r *Runner) Stop(ctx context.Context) error {
	return r.System.Stop(ctx)
}

// Tick queues one frame of dt.
func (r *Runner) Tick(ctx context.Context, dt time.Duration) error {
	return r.System.NoSender().Tell(ctx, r.flockPID, durationpb.New(dt))
}

// Patch queues a partial tuning update, keys are Params json names.
func (r *Runner) Patch(ctx context.Context, patch map[string]interface{}) error {
	msg, err := structpb.NewStruct(patch)
	if err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}
	return r.System.NoSender().Tell(ctx, r.flockPID, msg)
}

// Resize queues adding (delta > 0) or popping (delta < 0) boids.
func (r *Runner) Resize(ctx context.Context, delta int) error {
	return r.System.NoSender().Tell(ctx, r.flockPID, wrapperspb.Int32(int32(delta)))
}

// Sample asks the flock for its stats. The mailbox is FIFO, so every message
// sent before it has been applied.
func (r *Runner) Sample(ctx context.Context) (Sample, error) {
	resp, err := r.System.NoSender().Ask(ctx, r.flockPID, &emptypb.Empty{}, r.askTimeout)
	if err != nil {
		return Sample{}, fmt.Errorf("failed to ask flock stats: %w", err)
	}
	st, ok := resp.(*structpb.Struct)
	if !ok {
		return Sample{}, fmt.Errorf("unexpected stats reply %T", resp)
	}
	return SampleFromProto(st), nil
}

// Run sends ticks frames of dt and samples the flock every sampleEvery ticks,
// plus once before the first frame.
func (r *Runner) Run(ctx context.Context, ticks int, dt time.Duration, sampleEvery int) ([]Sample, error) {
	if sampleEvery <= 0 {
		sampleEvery = 1
	}
	first, err := r.Sample(ctx)
	if err != nil {
		return nil, err
	}
	samples := []Sample{first}
	for i := 1; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		if err := r.Tick(ctx, dt); err != nil {
			return samples, fmt.Errorf("tick %d: %w", i, err)
		}
		if i%sampleEvery == 0 || i == ticks {
			s, err := r.Sample(ctx)
			if err != nil {
				return samples, err
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}
