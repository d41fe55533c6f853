package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logitech/internal/core/application/usecases/commands"
	"logitech/internal/core/domain/services"
	"logitech/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DriverAssignmentJob is the retry loop for driver assignment. It sweeps
// every second for the oldest paid order without a driver, so orders left
// unassigned by earlier attempts get picked up as soon as capacity frees
// up or a new driver registers.
type DriverAssignmentJob struct {
	handler commands.AssignDriverCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAssignmentJob creates a new sweep job over the given assignment
// handler.
func NewDriverAssignmentJob(handler commands.AssignDriverCommandHandler, logger *slog.Logger) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_assignment_job"),
	}
}

// Start begins the assignment sweep, running every second.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignNextOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue, a missing driver, and a lost CAS race are all
			// expected between sweeps; everything else is a system problem.
			if !errors.Is(err, errs.ErrObjectNotFound) &&
				!errors.Is(err, services.ErrNoDriverAvailable) &&
				!errors.Is(err, errs.ErrVersionConflict) {
				j.logger.ErrorContext(ctx, "Driver assignment sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment sweep started (running every second)")
	return nil
}

// Stop stops the assignment sweep.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver assignment sweep stopped")
}
