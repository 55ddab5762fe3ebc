package snapshotstore

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

const (
	PlayersFile  = "players.json"
	StatsFile    = "player-stats.json"
	ManifestFile = "manifest.json"
)

// Store keeps the snapshot as three JSON files in one directory.
type Store struct {
	dir    string
	logger *logging.Logger
	rename func(oldpath, newpath string) error
}

func NewStore(dir string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{dir: dir, logger: logger, rename: os.Rename}
}

func (s *Store) Dir() string {
	return s.dir
}

type pendingFile struct {
	tmp    string
	final  string
	backup string
}

// Publish encodes every file to a temp name first and renames only after all
// of them were written. The manifest is renamed last. The files being
// replaced are hard-linked aside first, so a failed rename restores the
// previous snapshot instead of leaving a mix of both.
func (s *Store) Publish(ctx context.Context, snap snapshot.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create snapshot dir %s", s.dir)
	}

	payloads := []struct {
		name  string
		value any
	}{
		{name: PlayersFile, value: toPlayerRecords(snap.Players)},
		{name: StatsFile, value: toStatRecords(snap.Stats)},
		{name: ManifestFile, value: toManifestRecord(snap.Manifest)},
	}

	pending := make([]pendingFile, 0, len(payloads))
	cleanup := func() {
		for _, p := range pending {
			_ = os.Remove(p.tmp)
		}
	}

	for _, payload := range payloads {
		if err := ctx.Err(); err != nil {
			cleanup()
			return err
		}
		tmp, err := s.writeTemp(payload.name, payload.value)
		if err != nil {
			cleanup()
			return err
		}
		pending = append(pending, pendingFile{tmp: tmp, final: filepath.Join(s.dir, payload.name)})
	}

	for i := range pending {
		backup, err := s.backup(pending[i].final)
		if err != nil {
			cleanup()
			removeBackups(pending)
			return err
		}
		pending[i].backup = backup
	}

	for i, p := range pending {
		if err := s.rename(p.tmp, p.final); err != nil {
			restoreErr := s.restore(pending[:i])
			cleanup()
			removeBackups(pending)
			if restoreErr != nil {
				return crerr.CombineErrors(crerr.Wrapf(err, "publish %s", p.final), restoreErr)
			}
			return crerr.Wrapf(err, "publish %s", p.final)
		}
		pending[i].tmp = ""
	}
	removeBackups(pending)

	s.logger.InfoContext(ctx, "snapshot published",
		"dir", s.dir,
		"run_id", snap.Manifest.RunID,
		"players", len(snap.Players),
		"stats", len(snap.Stats),
	)
	return nil
}

// backup hard-links an existing file to a hidden name. It returns "" when
// there is nothing to back up.
func (s *Store) backup(final string) (string, error) {
	if _, err := os.Stat(final); err != nil {
		if crerr.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", crerr.Wrapf(err, "stat %s", final)
	}
	backup := filepath.Join(filepath.Dir(final), "."+filepath.Base(final)+".prev")
	_ = os.Remove(backup)
	if err := os.Link(final, backup); err != nil {
		return "", crerr.Wrapf(err, "back up %s", final)
	}
	return backup, nil
}

// restore puts back the files already replaced by a failed publish. Files
// that did not exist before are removed.
func (s *Store) restore(published []pendingFile) error {
	var errs error
	for _, p := range published {
		if p.backup == "" {
			if err := os.Remove(p.final); err != nil && !crerr.Is(err, fs.ErrNotExist) {
				errs = crerr.CombineErrors(errs, crerr.Wrapf(err, "remove %s", p.final))
			}
			continue
		}
		if err := os.Rename(p.backup, p.final); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrapf(err, "restore %s", p.final))
		}
	}
	return errs
}

func removeBackups(pending []pendingFile) {
	for _, p := range pending {
		if p.backup != "" {
			_ = os.Remove(p.backup)
		}
	}
}

func (s *Store) writeTemp(name string, value any) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigStd.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", crerr.Wrapf(err, "encode %s", name)
	}

	f, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", crerr.Wrapf(err, "create temp file for %s", name)
	}
	tmp := f.Name()

	if _, err := f.Write(buf.B); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", crerr.Wrapf(err, "write %s", tmp)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", crerr.Wrapf(err, "sync %s", tmp)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", crerr.Wrapf(err, "close %s", tmp)
	}
	return tmp, nil
}

// Load returns false when no snapshot has been published to the directory. A
// missing manifest is tolerated; its counts are derived from the data files.
func (s *Store) Load(ctx context.Context) (snapshot.Snapshot, bool, error) {
	var players []playerRecord
	found, err := s.readJSON(PlayersFile, &players)
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	if !found {
		s.logger.WarnContext(ctx, "snapshot not found, serving empty data", "dir", s.dir)
		return snapshot.Snapshot{}, false, nil
	}

	var stats []statRecord
	found, err = s.readJSON(StatsFile, &stats)
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	if !found {
		return snapshot.Snapshot{}, false, crerr.Newf("snapshot in %s has %s but no %s", s.dir, PlayersFile, StatsFile)
	}

	var manifest manifestRecord
	found, err = s.readJSON(ManifestFile, &manifest)
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	if !found {
		manifest = manifestRecord{Players: len(players), Stats: len(stats)}
	}

	snap := snapshot.Snapshot{
		Manifest: fromManifestRecord(manifest),
		Players:  fromPlayerRecords(players),
		Stats:    fromStatRecords(stats),
	}
	for _, p := range snap.Players {
		if err := p.Validate(); err != nil {
			return snapshot.Snapshot{}, false, crerr.Wrapf(err, "invalid player %d in %s", p.ID, PlayersFile)
		}
	}
	for _, st := range snap.Stats {
		if err := st.Validate(); err != nil {
			return snapshot.Snapshot{}, false, crerr.Wrapf(err, "invalid stat %s/%s in %s", st.PlayerName, st.Format, StatsFile)
		}
	}
	return snap, true, nil
}

func (s *Store) readJSON(name string, target any) (bool, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if crerr.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, crerr.Wrapf(err, "read %s", path)
	}
	if err := sonic.Unmarshal(data, target); err != nil {
		return false, crerr.Wrapf(err, "decode %s", path)
	}
	return true, nil
}
