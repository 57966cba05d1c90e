package source

import (
	"context"
	"fmt"
	"os/exec"
)

// Camera captures a live MJPEG stream from a V4L2 device through an
// ffmpeg subprocess. Device setup beyond the size/rate flags stays with
// the operating system.
type Camera struct {
	ctx    context.Context
	cmd    *exec.Cmd
	stream *MJPEGStream
}

// OpenCamera starts ffmpeg reading from the device and returns the frame
// stream. Canceling the context stops the capture.
func OpenCamera(ctx context.Context, device string, width, height, fps int) (*Camera, error) {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", "v4l2",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", device,
		"-f", "mjpeg",
		"-q:v", "4",
		"-",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	return &Camera{
		ctx:    ctx,
		cmd:    cmd,
		stream: NewMJPEGStream(stdout),
	}, nil
}

// Frames exposes the capture stream. The channel closes when the device
// stops delivering or the capture context is canceled.
func (c *Camera) Frames() <-chan Frame {
	return c.stream.Frames(c.ctx)
}

// Close waits for the subprocess to exit. Expected after context cancel
// or end of stream; the exit error of a killed ffmpeg is not interesting.
func (c *Camera) Close() error {
	_ = c.cmd.Wait()
	return nil
}
