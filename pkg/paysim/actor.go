package paysim

import (
	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// settleActor runs the processor on the actor mailbox, one settlement at a
// time, fire-and-forget.
type settleActor struct {
	processor *Processor
	logger    *zap.Logger
}

func (a *settleActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *SettlePayment:
		a.processor.Process(msg)

	case *actor.Started:
		a.logger.Info("Payment simulator started")

	case *actor.Stopping:
		a.logger.Info("Payment simulator stopping")

	case *actor.Stopped:
		a.logger.Info("Payment simulator stopped")
	}
}

// Simulator is the handle the API uses to hand orders to the simulated
// gateway.
type Simulator struct {
	system *actor.ActorSystem
	pid    *actor.PID
}

func NewSimulator(system *actor.ActorSystem, processor *Processor, logger *zap.Logger) *Simulator {
	props := actor.PropsFromProducer(func() actor.Actor {
		return &settleActor{processor: processor, logger: logger}
	})
	pid := system.Root.Spawn(props)
	return &Simulator{system: system, pid: pid}
}

// Settle enqueues a settlement and returns immediately.
func (s *Simulator) Settle(msg *SettlePayment) {
	s.system.Root.Send(s.pid, msg)
}

// Stop shuts the simulator actor down. In-flight settlements finish;
// queued ones are dropped, leaving their orders in processing.
func (s *Simulator) Stop() {
	s.system.Root.Stop(s.pid)
}
