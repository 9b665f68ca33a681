package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Store is the persistence gateway: it loads and saves whole address book
// snapshots at well-defined points (startup, shutdown, explicit save).
type Store interface {
	Load(ctx context.Context) (*book.AddressBook, error)
	Save(ctx context.Context, b *book.AddressBook) error
}

// VCardStore persists the address book as a vCard file: one card per
// contact carrying FN, the ordered TEL list and an optional BDAY.
type VCardStore struct {
	Path string
}

// NewVCardStore creates a store bound to the given file path.
func NewVCardStore(path string) *VCardStore {
	return &VCardStore{Path: path}
}

// Load reads the snapshot file into a fresh address book.
// A missing file is not an error: it yields an empty book.
func (s *VCardStore) Load(ctx context.Context) (*book.AddressBook, error) {
	if s.Path == "" {
		return nil, errors.New(config.ErrStorePathEmpty)
	}

	log := slog.With(
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, s.Path,
	)

	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgSnapshotMissing)
		return book.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotOpen, err)
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = f.Close() }()

	b := book.NewAddressBook()
	if _, err := MergeVCards(ctx, b, f); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}

	log.Info(config.MsgSnapshotLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

// Save writes the whole book to the snapshot file. The data goes to a
// temporary file first and is renamed over the target, so a crash mid-write
// never leaves a truncated snapshot behind.
func (s *VCardStore) Save(ctx context.Context, b *book.AddressBook) error {
	if s.Path == "" {
		return errors.New(config.ErrStorePathEmpty)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-ops once the rename succeeded.
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	encoder := vcard.NewEncoder(tmp)
	for _, rec := range b.Records() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := encoder.Encode(cardFromRecord(rec)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
		}
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := os.Chmod(tmpName, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotRename, err)
	}

	slog.Info(config.MsgSnapshotSaved,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, s.Path,
		config.LogKeyCount, b.Len(),
	)
	return nil
}
