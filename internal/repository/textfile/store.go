// Package textfile stores each collection as a pipe-delimited text file, one
// record per line. Every save rewrites the whole file.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	TrainsFile   = "trains.txt"
	BookingsFile = "bookings.txt"
	StaffFile    = "staff.txt"
)

type Store[T any] struct {
	path   string
	codec  Codec[T]
	mu     sync.Mutex
	logger logger.Logger
}

func NewStore[T any](path string, codec Codec[T], logger logger.Logger) *Store[T] {
	return &Store[T]{path: path, codec: codec, logger: logger}
}

func NewTrainStore(dir string, loc *time.Location, logger logger.Logger) *Store[domain.Train] {
	return NewStore[domain.Train](filepath.Join(dir, TrainsFile), TrainCodec{Location: loc}, logger)
}

func NewBookingStore(dir string, logger logger.Logger) *Store[domain.Booking] {
	return NewStore[domain.Booking](filepath.Join(dir, BookingsFile), BookingCodec{}, logger)
}

func NewStaffStore(dir string, logger logger.Logger) *Store[domain.Staff] {
	return NewStore[domain.Staff](filepath.Join(dir, StaffFile), StaffCodec{}, logger)
}

func (s *Store[T]) Path() string { return s.path }

// LoadAll reads every well-formed record in file order. A missing file is an
// empty collection; malformed lines are logged and skipped.
func (s *Store[T]) LoadAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	res := make([]T, 0)
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		v, err := s.codec.Decode(line)
		if err != nil {
			s.logger.Warn("corrupted record skipped",
				logger.String("file", s.path),
				logger.Int("line", lineNo),
				logger.String("error", err.Error()),
			)
			continue
		}
		res = append(res, v)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return res, nil
}

// SaveAll replaces the file contents with items. The new contents are written
// to a temporary file in the same directory and renamed over the old one.
func (s *Store[T]) SaveAll(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, v := range items {
		if _, err = w.WriteString(s.codec.Encode(v) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", tmp.Name(), err)
		}
	}
	if err = w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
