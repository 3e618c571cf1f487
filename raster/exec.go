package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
)

// runPiped feeds stdin to an external renderer and returns what it wrote to stdout
func runPiped(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("command failed: %w, output: %s", err, stderr.String())
	}

	if stdout.Len() == 0 {
		return nil, fmt.Errorf("got no data from %s", name)
	}

	return stdout.Bytes(), nil
}

func decodePNG(backend string, data []byte) (image.Image, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, NewBackendError(backend, "decode output", err)
	}
	if err := CheckSize(backend, float64(cfg.Width), float64(cfg.Height)); err != nil {
		return nil, err
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, NewBackendError(backend, "decode output", err)
	}
	return img, nil
}
