package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sebamiro/bitcoinrpc"
	"github.com/sebamiro/bitcoinrpc/internal/config"
	"github.com/sebamiro/bitcoinrpc/internal/logs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// exitError carries the process exit code out of RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:           "btcrpc [flags] <method> [args...]",
		Short:         "Call a Bitcoin Core RPC method",
		Long:          "Each argument is sent as a JSON value when it parses as one, and as a JSON string otherwise.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			log, err := logs.New(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			client, err := newClient(cfg, log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, client, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.SetInterspersed(false)
	f.StringVarP(&configPath, "config", "c", "", "path to configuration file")
	f.String("url", config.DefaultURL, "node RPC endpoint")
	f.String("user", "", "RPC user")
	f.String("password", "", "RPC password")
	f.String("cookie", "", "path to the node's .cookie file")
	f.String("log-level", "info", "log level")
	f.String("log-file", "", "write logs to a rotating file")
	for key, flag := range map[string]string{
		"url":         "url",
		"user":        "user",
		"password":    "password",
		"cookie_file": "cookie",
		"log.level":   "log-level",
		"log.file":    "log-file",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}

func newClient(cfg *config.Config, log *zap.Logger) (*bitcoinrpc.Client, error) {
	user, password, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}
	opts := []bitcoinrpc.Option{bitcoinrpc.WithLogger(log)}
	if user != "" {
		opts = append(opts, bitcoinrpc.WithAuth(user, password))
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, bitcoinrpc.WithRateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	return bitcoinrpc.New(cfg.URL, opts...), nil
}

// parseArgs turns command line arguments into positional params.
func parseArgs(args []string) []json.RawMessage {
	params := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		if json.Valid([]byte(a)) {
			params = append(params, json.RawMessage(a))
			continue
		}
		b, _ := json.Marshal(a)
		params = append(params, b)
	}
	return params
}

func run(ctx context.Context, client *bitcoinrpc.Client, args []string, stdout, stderr io.Writer) error {
	result, err := client.Call(ctx, args[0], parseArgs(args[1:])...)
	if err != nil {
		var rerr *bitcoinrpc.Error
		if errors.As(err, &rerr) && rerr.Kind == bitcoinrpc.KindProtocol {
			fmt.Fprintf(stderr, "error code: %d\nerror message:\n%s\n", rerr.Code, rerr.Message)
			return &exitError{code: 1}
		}
		return err
	}
	return printResult(stdout, result)
}

// printResult writes strings unquoted and everything else indented.
func printResult(w io.Writer, result json.RawMessage) error {
	var s string
	if err := json.Unmarshal(result, &s); err == nil {
		_, err = fmt.Fprintln(w, s)
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, result, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
