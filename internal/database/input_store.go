package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

const inputFilePrefix = "input_"

// CorruptInputError reports an input file that is not a valid input document.
type CorruptInputError struct {
	ID   int64
	Path string
	Err  error
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("corrupt input %d at %s: %v", e.ID, e.Path, e.Err)
}

func (e *CorruptInputError) Unwrap() error { return e.Err }

// InputStore keeps field inputs as one JSON document per input under a
// directory. File errors are returned unwrapped enough for errors.As to find
// the *fs.PathError; undecodable files yield a *CorruptInputError.
type InputStore struct {
	dir string
	log logger.Logger
}

// NewInputStore creates an input store rooted at dir.
func NewInputStore(dir string, log logger.Logger) *InputStore {
	if log == nil {
		log = logger.NewNop()
	}
	return &InputStore{dir: dir, log: log}
}

func (s *InputStore) path(id int64) string {
	return filepath.Join(s.dir, inputFilePrefix+strconv.FormatInt(id, 10)+".json")
}

// Find returns the input with id.
func (s *InputStore) Find(ctx context.Context, id int64) (*domain.Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(EntityInput, strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("read input %d: %w", id, err)
	}

	var input domain.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, &CorruptInputError{ID: id, Path: s.path(id), Err: err}
	}
	return &input, nil
}

// FindByStatus lists inputs in status ordered by id. An empty status lists all.
// Corrupt input files are logged and skipped.
func (s *InputStore) FindByStatus(ctx context.Context, status domain.InputStatus) ([]domain.Input, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Input{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}

	inputs := make([]domain.Input, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, inputFilePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		id, convErr := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(name, inputFilePrefix), ".json"), 10, 64)
		if convErr != nil {
			continue
		}

		input, findErr := s.Find(ctx, id)
		var corrupt *CorruptInputError
		if errors.As(findErr, &corrupt) {
			s.log.Warn("Skipping corrupt input file",
				logger.Int64("input_id", id),
				logger.String("path", corrupt.Path),
				logger.Error(corrupt.Err),
			)
			continue
		}
		if findErr != nil {
			return nil, findErr
		}
		if status == "" || input.Status == status {
			inputs = append(inputs, *input)
		}
	}

	sort.Slice(inputs, func(i, j int) bool { return inputs[i].ID < inputs[j].ID })
	return inputs, nil
}

// Save writes input, replacing any previous version.
func (s *InputStore) Save(ctx context.Context, input domain.Input) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create input directory: %w", err)
	}

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Errorf("encode input %d: %w", input.ID, err)
	}

	tmp := s.path(input.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write input %d: %w", input.ID, err)
	}
	if err := os.Rename(tmp, s.path(input.ID)); err != nil {
		return fmt.Errorf("write input %d: %w", input.ID, err)
	}
	return nil
}

// Delete removes the input with id.
func (s *InputStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(EntityInput, strconv.FormatInt(id, 10))
	}
	if err != nil {
		return fmt.Errorf("delete input %d: %w", id, err)
	}
	return nil
}
