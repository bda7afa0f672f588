// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/katalvlaran/lvpsatd/config"
	"github.com/katalvlaran/lvpsatd/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type runOptions struct {
	configPath  string
	steps       int
	mode        int
	every       int
	logLevel    string
	logFormat   string
	dumpConfig  bool
	metricsAddr string
}

func defaultRunOptions() runOptions {
	return runOptions{steps: 100, mode: 1, every: 10, logLevel: "info", logFormat: "text"}
}

func addFlags(fs *pflag.FlagSet, o *runOptions) {
	fs.StringVarP(&o.configPath, "config", "c", o.configPath, "YAML configuration file (defaults and PSATD_* variables apply)")
	fs.IntVarP(&o.steps, "steps", "n", o.steps, "number of time steps")
	fs.IntVar(&o.mode, "mode", o.mode, "wave number along z, in units of 2π/Lz")
	fs.IntVar(&o.every, "report-every", o.every, "log diagnostics every N steps")
	fs.StringVar(&o.logLevel, "log-level", o.logLevel, "log level (panic, fatal, error, warn, info, debug, trace)")
	fs.StringVar(&o.logFormat, "log-format", o.logFormat, "log format (text or json)")
	fs.BoolVar(&o.dumpConfig, "dump-config", o.dumpConfig, "print the effective configuration as YAML and exit")
	fs.StringVar(&o.metricsAddr, "metrics-addr", o.metricsAddr, "serve Prometheus metrics on this address while running")
}

func newRootCommand() *cobra.Command {
	o := defaultRunOptions()
	cmd := &cobra.Command{
		Use:          "psatd-wave",
		Short:        "Propagate a vacuum plane wave with the PSATD solver",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}
	addFlags(cmd.Flags(), &o)

	return cmd
}

func newLogger(cmd *cobra.Command, o runOptions) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)
	switch o.logFormat {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", o.logFormat)
	}

	return log, nil
}

func run(cmd *cobra.Command, o runOptions) error {
	c, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.dumpConfig {
		out, err := config.Marshal(c)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	log, err := newLogger(cmd, o)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}
	if o.metricsAddr != "" {
		srv := serveMetrics(o.metricsAddr, reg, log)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	rep, err := runWave(c, o, log, rec)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"steps":        rep.Steps,
		"time":         rep.Time,
		"omega":        rep.Omega,
		"energy_drift": rep.EnergyDrift(),
		"max_div_e":    rep.MaxDivE,
		"max_error":    rep.MaxError,
	}).Info("wave: done")

	return reportMetrics(reg, log)
}

func serveMetrics(addr string, reg *prometheus.Registry, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics: listener stopped")
		}
	}()
	log.WithField("addr", addr).Info("metrics: serving /metrics")

	return srv
}

// reportMetrics logs call counts and total time per level and operation.
func reportMetrics(reg prometheus.Gatherer, log logrus.FieldLogger) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			f := logrus.Fields{"metric": mf.GetName()}
			for _, lp := range m.GetLabel() {
				f[lp.GetName()] = lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				f["value"] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				f["count"] = m.GetHistogram().GetSampleCount()
				f["seconds"] = m.GetHistogram().GetSampleSum()
			}
			log.WithFields(f).Debug("metrics")
		}
	}

	return nil
}
