package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Alquiler-api/pkg/config"
	"github.com/jhoicas/Alquiler-api/pkg/logger"
)

// Scheduler registra y ejecuta los jobs programados con cron.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

// NewScheduler crea el scheduler (UTC, precisión de segundos) y registra
// los jobs según la configuración.
func NewScheduler(cfg config.SchedulerConfig, returnsJob *ReturnsJob, log *logger.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)
	s := &Scheduler{cron: c, log: log.Component("scheduler")}

	if _, err := c.AddFunc(cfg.ReturnsSweep, returnsJob.Run); err != nil {
		s.log.Error().Err(err).Str("spec", cfg.ReturnsSweep).Msg("no se pudo registrar el barrido de retiros")
	}

	return s
}

// Start arranca el scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler iniciado")
}

// Stop detiene el scheduler y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}
