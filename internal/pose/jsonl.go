package pose

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

const maxLineBytes = 1 << 20

// frameLine is one line of landmark output. A line without "detected"
// counts as detected when it carries landmarks.
type frameLine struct {
	Frame     *int                                  `json:"frame"`
	Detected  *bool                                 `json:"detected"`
	Landmarks map[models.Landmark]models.JointPoint `json:"landmarks"`
}

// JSONLSource reads one JSON frame object per line
type JSONLSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
	logger  *zap.Logger
	line    int
	eof     bool
}

// NewJSONLSource reads frames from r. closer may be nil.
func NewJSONLSource(r io.Reader, closer io.Closer, logger *zap.Logger) *JSONLSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &JSONLSource{
		scanner: scanner,
		closer:  closer,
		logger:  logger.Named("jsonl"),
	}
}

// OpenJSONL opens a landmark file
func OpenJSONL(path string, logger *zap.Logger) (*JSONLSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frames file: %w", err)
	}
	return NewJSONLSource(f, f, logger), nil
}

// Next returns the next frame. A malformed line yields an undetected frame.
func (s *JSONLSource) Next(ctx context.Context) (models.PoseFrame, error) {
	for {
		if err := ctx.Err(); err != nil {
			return models.PoseFrame{}, err
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return models.PoseFrame{}, fmt.Errorf("failed to read frame line %d: %w", s.line+1, err)
			}
			s.eof = true
			return models.PoseFrame{}, io.EOF
		}

		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}
		index := s.line
		s.line++

		return s.decode(index, []byte(text)), nil
	}
}

func (s *JSONLSource) decode(index int, raw []byte) models.PoseFrame {
	var line frameLine
	if err := json.Unmarshal(raw, &line); err != nil {
		s.logger.Warn("malformed frame line", zap.Int("line", index+1), zap.Error(err))
		return models.UndetectedFrame(index)
	}

	if line.Frame != nil {
		index = *line.Frame
	}
	detected := len(line.Landmarks) > 0
	if line.Detected != nil {
		detected = *line.Detected && detected
	}
	if !detected {
		return models.UndetectedFrame(index)
	}

	return models.PoseFrame{
		Index:     index,
		Detected:  true,
		Landmarks: line.Landmarks,
	}
}

// Close releases the underlying reader
func (s *JSONLSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
