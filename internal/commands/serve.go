// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/server"
	"github.com/dacolabs/dcgen/internal/session"
	"github.com/dacolabs/dcgen/internal/translate"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(translators translate.Register) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the HTTP API for schema parsing, planning, generation, templates
and saved plans under /api.`,
		Example: `  # Serve on the configured port
  dcgen serve

  # Serve on another port
  dcgen serve --port 9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("port") {
				port = sess.Config.Server.Port
			}
			return runServe(cmd, sess, translators, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (defaults to server.port)")

	return cmd
}

func runServe(cmd *cobra.Command, sess *session.Context, translators translate.Register, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d is out of range", port)
	}

	planner, err := sess.Planner()
	if err != nil {
		return err
	}
	if planner.Heuristic() {
		prompts.Warn("no API key in %s; plans will be built heuristically", sess.Config.LLM.APIKeyEnv)
	}
	st, err := openStore(cmd, sess)
	if err != nil {
		return err
	}

	srv := server.New(server.Options{
		Planner:      planner,
		Store:        st,
		Translators:  translators,
		DefaultCount: sess.Config.Generate.Count,
		AccessLog:    os.Stdout,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
