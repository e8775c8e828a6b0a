package jsonfile

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jwalitptl/vitagotchi/pkg/errors"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

// CounterStore keeps the monotonically increasing patient identifier
// in its own file, so corrupting or deleting the record map never
// reissues an ID.
type CounterStore struct {
	path  string
	width int
	log   *logger.Logger
}

func NewCounterStore(path string, width int, log *logger.Logger) *CounterStore {
	if width <= 0 {
		width = 5
	}
	return &CounterStore{path: path, width: width, log: log}
}

// NextID increments the persisted counter and returns it zero-padded.
// A missing or malformed counter file reads as zero.
func (c *CounterStore) NextID(ctx context.Context) (string, error) {
	current := c.read()
	next := current + 1
	if err := os.WriteFile(c.path, []byte(strconv.Itoa(next)), 0o644); err != nil {
		return "", errors.NewPersistence(fmt.Sprintf("failed to write counter %s", c.path), err)
	}
	return fmt.Sprintf("%0*d", c.width, next), nil
}

func (c *CounterStore) read() int {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return 0
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		c.log.Warn("counter file is malformed, resetting to zero", "path", c.path)
		return 0
	}
	return value
}
