package renderer

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Recorder pipes raw screen frames into an ffmpeg subprocess that encodes the
// run as an mp4. Frames must be captured after EndDrawing so the backbuffer
// holds the finished frame.
type Recorder struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	buf    []byte
	width  int
	height int
}

// NewRecorder starts ffmpeg for the given output file and frame geometry.
func NewRecorder(path string, width, height, fps int) (*Recorder, error) {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("recording requires ffmpeg on PATH: %w", err)
	}

	cmd := exec.Command(ffmpeg,
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", strconv.Itoa(fps),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		path,
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opening ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting ffmpeg: %w", err)
	}

	return &Recorder{
		cmd:    cmd,
		stdin:  stdin,
		buf:    make([]byte, width*height*4),
		width:  width,
		height: height,
	}, nil
}

// CaptureFrame reads the current backbuffer and writes it to the encoder.
func (r *Recorder) CaptureFrame() error {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)

	pixels := rl.LoadImageColors(img)
	if len(pixels) != r.width*r.height {
		return fmt.Errorf("captured %d pixels, want %d", len(pixels), r.width*r.height)
	}

	for i, px := range pixels {
		r.buf[i*4] = px.R
		r.buf[i*4+1] = px.G
		r.buf[i*4+2] = px.B
		r.buf[i*4+3] = px.A
	}

	if _, err := r.stdin.Write(r.buf); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close finalizes the video file.
func (r *Recorder) Close() error {
	if err := r.stdin.Close(); err != nil {
		return fmt.Errorf("closing ffmpeg stdin: %w", err)
	}
	if err := r.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg exited: %w", err)
	}
	return nil
}
