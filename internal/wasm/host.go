package wasm

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
	"go.uber.org/zap/zapio"
)

// instantiateHost provides the host modules guests may import. The bundle is
// built for wasip1 and imports nothing beyond WASI.
func (r *Runtime) instantiateHost(ctx context.Context) error {
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r.runtime); err != nil {
		return &HostFunctionError{
			FunctionName: wasi_snapshot_preview1.ModuleName,
			Err:          err,
		}
	}
	return nil
}

// guestOutput routes a guest's stdout and stderr into the logger, one entry
// per line.
type guestOutput struct {
	stdout *zapio.Writer
	stderr *zapio.Writer
}

func newGuestOutput(logger *zap.Logger, instanceID string) *guestOutput {
	l := logger.With(zap.String("instance_id", instanceID))
	return &guestOutput{
		stdout: &zapio.Writer{Log: l.With(zap.String("stream", "stdout")), Level: zap.DebugLevel},
		stderr: &zapio.Writer{Log: l.With(zap.String("stream", "stderr")), Level: zap.WarnLevel},
	}
}

// Close flushes any partial line.
func (g *guestOutput) Close() error {
	if err := g.stdout.Close(); err != nil {
		return fmt.Errorf("flush guest stdout: %w", err)
	}
	return g.stderr.Close()
}
